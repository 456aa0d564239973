package constants

// Settings defaults applied to every new attachment.
const (
	DefaultPageSize = 4
	MinPageSize     = 1
	MaxPageSize     = 100

	DefaultSortField = "dateCreated"
)

// Built-in section ids, in document order.
var DefaultSections = []string{"section1", "section2", "section3"}
