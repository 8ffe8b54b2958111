package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/htdinh/pfob-cli/internal/domain"
)

const dateParamLayout = "2006-01-02"

func filterQuery(filter domain.TransactionFilter) url.Values {
	query := url.Values{}
	if filter.AccountID != 0 {
		query.Set("accountId", strconv.FormatInt(int64(filter.AccountID), 10))
	}
	if filter.Type != "" {
		query.Set("type", string(filter.Type))
	}
	if !filter.Start.IsZero() {
		query.Set("startDate", filter.Start.Format(dateParamLayout))
	}
	if !filter.End.IsZero() {
		query.Set("endDate", filter.End.Format(dateParamLayout))
	}
	return query
}

type transactionPayload struct {
	ID            int64    `json:"id"`
	BankAccountID int64    `json:"bankAccountId"`
	Date          string   `json:"date"`
	Type          string   `json:"type"`
	Amount        int64    `json:"amount"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	ESGScore      *float64 `json:"esgScore"`
}

func (p transactionPayload) toDomain() domain.Transaction {
	date, err := time.Parse(time.RFC3339, p.Date)
	if err != nil {
		date, _ = time.Parse(dateParamLayout, p.Date)
	}
	return domain.Transaction{
		ID:            p.ID,
		BankAccountID: domain.AccountID(p.BankAccountID),
		Date:          date,
		Type:          domain.TransactionType(p.Type),
		Amount:        p.Amount,
		Category:      p.Category,
		Description:   p.Description,
		ESGScore:      p.ESGScore,
	}
}

func (c *Client) Transactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	var payload struct {
		Transactions []transactionPayload `json:"transactions"`
	}
	if err := c.get(ctx, "/transactions", filterQuery(filter), &payload); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(payload.Transactions))
	for _, transaction := range payload.Transactions {
		transactions = append(transactions, transaction.toDomain())
	}

	return transactions, nil
}

func (c *Client) Summary(ctx context.Context, filter domain.TransactionFilter) (domain.Summary, error) {
	var payload struct {
		Summary struct {
			TotalIncome  int64 `json:"totalIncome"`
			TotalExpense int64 `json:"totalExpense"`
			Net          int64 `json:"net"`
		} `json:"summary"`
	}
	if err := c.get(ctx, "/transactions/summary", filterQuery(filter), &payload); err != nil {
		return domain.Summary{}, fmt.Errorf("fetch summary: %w", err)
	}

	return domain.Summary{
		TotalIncome:  payload.Summary.TotalIncome,
		TotalExpense: payload.Summary.TotalExpense,
		Net:          payload.Summary.Net,
	}, nil
}

func (c *Client) Breakdown(ctx context.Context, filter domain.TransactionFilter) ([]domain.BreakdownRow, error) {
	var payload struct {
		Breakdown []struct {
			Category    string `json:"category"`
			Type        string `json:"type"`
			TotalAmount int64  `json:"totalAmount"`
		} `json:"breakdown"`
	}
	if err := c.get(ctx, "/transactions/breakdown", filterQuery(filter), &payload); err != nil {
		return nil, fmt.Errorf("fetch breakdown: %w", err)
	}

	rows := make([]domain.BreakdownRow, 0, len(payload.Breakdown))
	for _, row := range payload.Breakdown {
		rows = append(rows, domain.BreakdownRow{
			Category:    row.Category,
			Type:        domain.TransactionType(row.Type),
			TotalAmount: row.TotalAmount,
		})
	}

	return rows, nil
}

type transferBody struct {
	SourceAccountID int64    `json:"sourceAccountId"`
	TargetAccountID int64    `json:"targetAccountId"`
	Amount          int64    `json:"amount"`
	Description     string   `json:"description"`
	ESGScore        *float64 `json:"esgScore,omitempty"`
}

func transferRequestBody(req domain.TransferRequest) transferBody {
	return transferBody{
		SourceAccountID: int64(req.SourceAccountID),
		TargetAccountID: int64(req.TargetAccountID),
		Amount:          req.Amount,
		Description:     req.Description,
		ESGScore:        req.ESGScore,
	}
}

func (c *Client) ScoreTransfer(ctx context.Context, req domain.TransferRequest) (domain.ESGScore, error) {
	var payload struct {
		ESGScore float64 `json:"esgScore"`
		ESGGrade string  `json:"esgGrade"`
		Message  string  `json:"message"`
		Account  struct {
			ESGPoint float64 `json:"esgPoint"`
		} `json:"account"`
	}
	if err := c.post(ctx, "/transactions/esg_scoring", transferRequestBody(req), &payload); err != nil {
		return domain.ESGScore{}, fmt.Errorf("score transfer: %w", err)
	}

	return domain.ESGScore{
		Score:         payload.ESGScore,
		Grade:         payload.ESGGrade,
		Message:       payload.Message,
		AccountPoints: payload.Account.ESGPoint,
	}, nil
}

func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) (domain.TransferReceipt, error) {
	var payload struct {
		TransactionID int64  `json:"transactionId"`
		Message       string `json:"message"`
	}
	if err := c.post(ctx, "/transactions/transfer", transferRequestBody(req), &payload); err != nil {
		return domain.TransferReceipt{}, fmt.Errorf("execute transfer: %w", err)
	}

	return domain.TransferReceipt{TransactionID: payload.TransactionID, Message: payload.Message}, nil
}

func (c *Client) ConvertPoints(ctx context.Context, req domain.ConvertRequest) (domain.ConvertResult, error) {
	body := struct {
		AccountID int64   `json:"accountId"`
		Points    float64 `json:"points"`
	}{AccountID: int64(req.AccountID), Points: req.Points}

	var payload struct {
		AmountReceived     int64   `json:"amountReceived"`
		NewBalance         int64   `json:"newBalance"`
		RemainingESGPoints float64 `json:"remainingEsgPoints"`
	}
	if err := c.post(ctx, "/transactions/convert-esg-points", body, &payload); err != nil {
		return domain.ConvertResult{}, fmt.Errorf("convert points: %w", err)
	}

	return domain.ConvertResult{
		AmountReceived:  payload.AmountReceived,
		NewBalance:      payload.NewBalance,
		RemainingPoints: payload.RemainingESGPoints,
	}, nil
}
