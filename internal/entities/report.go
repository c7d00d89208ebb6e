package entities

// RequestGroupStats is one row of the maintenance report: request counts for
// a single team or category, broken down by stage and type.
type RequestGroupStats struct {
	GroupID    uint64 `json:"groupId"`
	GroupName  string `json:"groupName"`
	Total      uint64 `json:"total"`
	New        uint64 `json:"new"`
	Assigned   uint64 `json:"assigned"`
	InProgress uint64 `json:"inProgress"`
	Repaired   uint64 `json:"repaired"`
	Scrapped   uint64 `json:"scrapped"`
	Corrective uint64 `json:"corrective"`
	Preventive uint64 `json:"preventive"`
	Predictive uint64 `json:"predictive"`
}

// SummaryReport backs the dashboard header: totals by request stage and
// equipment status.
type SummaryReport struct {
	TotalRequests     uint64            `json:"totalRequests"`
	RequestsByStage   map[string]uint64 `json:"requestsByStage"`
	TotalEquipment    uint64            `json:"totalEquipment"`
	EquipmentByStatus map[string]uint64 `json:"equipmentByStatus"`
}
