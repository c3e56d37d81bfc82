package model

// NamedValue is a chart-ready (label, value) pair.
type NamedValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Point is a chart-ready scatter sample.
type Point struct {
	X float64 `json:"x"`
	Y int     `json:"y"`
}

// OverviewStats summarizes the full event record set. Recomputed per request.
type OverviewStats struct {
	TotalEvents    int    `json:"totalEvents"`
	AvgAttendance  int    `json:"avgAttendance"`
	TopDomain      string `json:"topDomain"`
	TopSpeakerType string `json:"topSpeakerType"`
}

// ChartData holds the chart projections served to the dashboard.
type ChartData struct {
	AttendanceByDomain       []NamedValue `json:"attendanceByDomain"`
	AttendanceBySpeaker      []NamedValue `json:"attendanceBySpeaker"`
	InteractivityCorrelation []Point      `json:"interactivityCorrelation"`
	FrictionImpact           []NamedValue `json:"frictionImpact"`
}
