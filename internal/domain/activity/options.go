package activity

// ListActivityOptions provides filtering options for listing activity.
type ListActivityOptions struct {
	TodoID       *string
	ActivityType *ActivityType
	Limit        int
	Offset       int
}
