package typed

const (
	// defaultCapacity is the initial slot count of a new Container.
	defaultCapacity = 8

	// maxCapacityHint caps WithCapacity; larger hints are treated as this.
	maxCapacityHint = 4096
)
