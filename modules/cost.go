package modules

import "github.com/andrew-eldridge/simux/kernel"

// CostAllocation names the timing bucket a DelayModule's elapsed delay is
// credited to (spec.md §4.5). The zero value is ValueAdded, matching the
// prototype's CostType.VALUE_ADDED default.
type CostAllocation string

const (
	ValueAdded    CostAllocation = "Value-Added"
	NonValueAdded CostAllocation = "Non-Value-Added"
	Wait          CostAllocation = "Wait"
	Transfer      CostAllocation = "Transfer"
	Other         CostAllocation = "Other"
)

// metricKey returns the entity-metrics map key this allocation contributes
// to, e.g. ValueAdded -> "Value-Added Time" (kernel.MetricValueAdded).
func (c CostAllocation) metricKey() string {
	switch c {
	case ValueAdded, "":
		return kernel.MetricValueAdded
	case NonValueAdded:
		return kernel.MetricNonValueAdded
	case Wait:
		return kernel.MetricWait
	case Transfer:
		return kernel.MetricTransfer
	case Other:
		return kernel.MetricOther
	default:
		return kernel.MetricOther
	}
}
