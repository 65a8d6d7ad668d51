package constants

// System execution priorities (lower runs first)
const (
	PrioritySpawn          = 10
	PriorityMotion         = 20
	PrioritySliceAnimation = 30
	PriorityLevel          = 40
)
