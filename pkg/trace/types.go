package trace

// Document is the declarative task-list format consumed by the loader. It
// names every task and its dependency edges explicitly; the loader never
// infers edges from timing.
type Document struct {
	Tasks []Record `yaml:"tasks" validate:"required,min=1,dive"`
}

// Record describes one timed task. Network records carry request fields, CPU
// records a task name; both share microsecond start/end timestamps relative
// to the trace origin.
type Record struct {
	ID           string   `yaml:"id" validate:"omitempty,max=128"`
	Kind         string   `yaml:"kind" validate:"required,oneof=network cpu"`
	URL          string   `yaml:"url" validate:"omitempty,url"`
	Protocol     string   `yaml:"protocol" validate:"omitempty,max=16"`
	ResourceType string   `yaml:"resourceType" validate:"omitempty,max=32"`
	TransferSize int64    `yaml:"transferSize" validate:"min=0"`
	FromCache    bool     `yaml:"fromCache"`
	Name         string   `yaml:"name" validate:"omitempty,max=256"`
	Start        int64    `yaml:"start" validate:"min=0"`
	End          int64    `yaml:"end" validate:"gtefield=Start"`
	MainDocument bool     `yaml:"mainDocument"`
	DependsOn    []string `yaml:"dependsOn" validate:"omitempty,dive,required"`
}
