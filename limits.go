package paginator

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)
