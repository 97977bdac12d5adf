package structs

// OrderAggregates is the raw aggregation result the order store produces.
type OrderAggregates struct {
	TotalOrders     int
	TotalRevenue    int64
	PendingOrders   int
	DeliveredOrders int
}

type Stats struct {
	TotalOrders       int     `json:"total_orders"`
	TotalInquiries    int     `json:"total_inquiries"`
	TotalRevenue      int64   `json:"total_revenue"`
	PendingOrders     int     `json:"pending_orders"`
	CompletedOrders   int     `json:"completed_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}
