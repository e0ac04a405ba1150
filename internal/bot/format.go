package bot

import (
	"fmt"
	"strings"

	statsmodels "slh-ecosystem-backend/internal/features/stats/models"
	txmodels "slh-ecosystem-backend/internal/features/transaction/models"
)

func formatStats(s *statsmodels.Stats) string {
	var b strings.Builder
	b.WriteString(adminPanelHeader)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "👥 Users: %d (active: %d)\n", s.TotalUsers, s.ActiveUsers)
	fmt.Fprintf(&b, "💸 Transactions: %d (pending: %d, completed: %d)\n",
		s.TotalTransactions, s.PendingTransactions, s.CompletedTransactions)
	fmt.Fprintf(&b, "💰 Total revenue: %.2f ILS\n", s.TotalRevenue)
	fmt.Fprintf(&b, "📊 Average transaction: %.2f ILS", s.AverageTransaction)
	return b.String()
}

func formatInvestPanel(txs []*txmodels.Transaction, completedTotal float64) string {
	var b strings.Builder
	b.WriteString(investPanelHeader)
	b.WriteString("\n\n")

	if len(txs) == 0 {
		b.WriteString("No transactions yet — press \"Invest now\" to get started.")
		return b.String()
	}

	for _, tx := range txs {
		fmt.Fprintf(&b, "#%d — %.2f %s, %s, status: %s\n",
			tx.ID, tx.Amount, tx.Currency, tx.Type, tx.Status)
	}
	fmt.Fprintf(&b, "\nCompleted total: %.2f ILS", completedTotal)
	return b.String()
}
