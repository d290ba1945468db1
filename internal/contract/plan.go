package contract

import "github.com/alexanderramin/planboard/internal/app"

type ImportResult = app.ImportResult
