package domain

type ItemSource string

const (
	SourceTask  ItemSource = "task"
	SourceEvent ItemSource = "event"
)

// Bucket is the presentation category an item resolves to.
type Bucket string

const (
	BucketFamily   Bucket = "family"
	BucketHealth   Bucket = "health"
	BucketWork     Bucket = "work"
	BucketPersonal Bucket = "personal"
	BucketTravel   Bucket = "travel"
	BucketDefault  Bucket = "default"
	BucketAllDay   Bucket = "allDay"
)
