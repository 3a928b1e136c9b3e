package types

// StatusPresentation describes how an application status is rendered.
// Every consumer (dashboards, applicant lists, detail views) reads this
// table instead of keeping its own status switch.
type StatusPresentation struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

var statusPresentations = map[ApplicationStatus]StatusPresentation{
	StatusNew:       {Label: "New", Color: "blue", Icon: "clock"},
	StatusReviewed:  {Label: "Reviewed", Color: "yellow", Icon: "eye"},
	StatusInterview: {Label: "Interview", Color: "green", Icon: "bar-chart"},
	StatusRejected:  {Label: "Rejected", Color: "red", Icon: "x-circle"},
	StatusHired:     {Label: "Hired", Color: "purple", Icon: "check-circle"},
}

// Presentation returns the display attributes for s. Unknown statuses get
// a gray fallback so rendering never breaks on bad data.
func (s ApplicationStatus) Presentation() StatusPresentation {
	if p, ok := statusPresentations[s]; ok {
		return p
	}
	return StatusPresentation{Label: string(s), Color: "gray", Icon: ""}
}
