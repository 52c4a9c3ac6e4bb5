package model

// Snapshot is the immutable set of records one engine call works from.
type Snapshot struct {
	Transactions []Transaction `json:"transactions" yaml:"transactions"`
	Budgets      []Budget      `json:"budgets,omitempty" yaml:"budgets,omitempty"`
	Goals        []Goal        `json:"goals,omitempty" yaml:"goals,omitempty"`
}
