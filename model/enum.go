package model

type Metric string

// Simple constants with direct string values
const (
	Metric1D Metric = "1D"
	Metric1M Metric = "1M"
	Metric6M Metric = "6M"
	Metric1Y Metric = "1Y"
)

type MetricOption struct {
	Key   Metric `json:"key"`
	Label string `json:"label"`
}

// MetricOptions lists the four selectable return horizons.
func MetricOptions() []MetricOption {
	return []MetricOption{
		{Key: Metric1D, Label: "1 Day Return"},
		{Key: Metric1M, Label: "30 Day Return"},
		{Key: Metric6M, Label: "6 Month Return"},
		{Key: Metric1Y, Label: "1 Year Return"},
	}
}

func (m Metric) Valid() bool {
	switch m {
	case Metric1D, Metric1M, Metric6M, Metric1Y:
		return true
	}
	return false
}

func (m Metric) Label() string {
	for _, opt := range MetricOptions() {
		if opt.Key == m {
			return opt.Label
		}
	}
	return string(m)
}

// Value extracts the row field this metric sorts on.
func (m Metric) Value(r EtfRow) float64 {
	switch m {
	case Metric1D:
		return r.Return1D
	case Metric1M:
		return r.Return1M
	case Metric6M:
		return r.Return6M
	default:
		return r.Return1Y
	}
}

type ViewSide string

const (
	SideTop    ViewSide = "top"
	SideBottom ViewSide = "bottom"
)
