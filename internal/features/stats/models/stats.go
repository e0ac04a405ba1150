package models

// Stats is the aggregate view rendered in the admin panel and the stats API.
type Stats struct {
	TotalUsers            int64   `json:"total_users"`
	ActiveUsers           int64   `json:"active_users"`
	TotalTransactions     int64   `json:"total_transactions"`
	PendingTransactions   int64   `json:"pending_transactions"`
	CompletedTransactions int64   `json:"completed_transactions"`
	TotalRevenue          float64 `json:"total_revenue"`
	AverageTransaction    float64 `json:"average_transaction"`
}
