package domain

// Message sections, mirroring the grouping of the admin panel's table.
const (
	SectionUI  = "ui"
	SectionLog = "log"
)
