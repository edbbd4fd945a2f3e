package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"

	"github.com/lmachado/billfold/internal/client"
	"github.com/lmachado/billfold/internal/ledger"
)

// Service renders an account's data into the download formats: a CSV of all
// clients and a per-client PDF invoice.
type Service struct {
	clients *client.Service
	ledger  *ledger.Service
}

func NewService(clientService *client.Service, ledgerService *ledger.Service) *Service {
	return &Service{
		clients: clientService,
		ledger:  ledgerService,
	}
}

// ClientsCSV streams all of the account's clients as CSV.
func (s *Service) ClientsCSV(ctx context.Context, accountID uuid.UUID, w io.Writer) error {
	filter := client.ListFilter{Page: 1, PageSize: exportPageSize}

	writer := csv.NewWriter(w)

	header := []string{"Client ID", "Name", "Email", "Outstanding Balance"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for {
		clients, total, err := s.clients.List(ctx, accountID, filter)
		if err != nil {
			return fmt.Errorf("listing clients: %w", err)
		}

		for _, c := range clients {
			row := []string{
				c.ID.String(),
				c.Name,
				c.Email,
				c.Balance.StringFixed(2),
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}

		if filter.Page*filter.PageSize >= total {
			break
		}

		filter.Page++
	}

	writer.Flush()

	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}

const exportPageSize = 500

// InvoicePDF renders the client's invoice: name, email, outstanding balance,
// then one line per transaction in insertion order.
func (s *Service) InvoicePDF(ctx context.Context, clientID, accountID uuid.UUID, w io.Writer) error {
	c, err := s.clients.Get(ctx, clientID, accountID)
	if err != nil {
		return err
	}

	txs, err := s.ledger.ListForClient(ctx, clientID, accountID)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Client Invoice for %s", c.Name))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s", c.Email))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Outstanding Balance: $%s", c.Balance.StringFixed(2)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)

	for _, tx := range txs {
		line := fmt.Sprintf("%s - %s: %s",
			tx.Date.Format("2006-01-02"), tx.Kind, tx.Amount.StringFixed(2))
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering invoice pdf: %w", err)
	}

	return nil
}
