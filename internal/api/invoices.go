package api

import (
	"context"
	"net/http"

	"github.com/employee7007-droid/construct-deal/internal/models"
)

// InvoiceClient talks to the /invoices resource domain.
type InvoiceClient struct {
	c *Client
}

// InvoiceList is the unwrapped data of GET /invoices.
type InvoiceList struct {
	Invoices   []models.Invoice  `json:"invoices"`
	Pagination models.Pagination `json:"pagination"`
}

func (ic *InvoiceClient) Create(ctx context.Context, in models.CreateInvoice) (*models.Invoice, error) {
	var out struct {
		Invoice models.Invoice `json:"invoice"`
	}
	if err := ic.c.mutate(ctx, http.MethodPost, "/invoices", in, &out, TagInvoice); err != nil {
		return nil, err
	}
	return &out.Invoice, nil
}

func (ic *InvoiceClient) List(ctx context.Context, p StatusListParams) (*InvoiceList, error) {
	var out InvoiceList
	if err := ic.c.query(ctx, "/invoices", p.Values(), []Tag{TagInvoice}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ic *InvoiceClient) Get(ctx context.Context, id string) (*models.Invoice, error) {
	var out struct {
		Invoice models.Invoice `json:"invoice"`
	}
	if err := ic.c.query(ctx, "/invoices/"+id, nil, []Tag{TagInvoice}, &out); err != nil {
		return nil, err
	}
	return &out.Invoice, nil
}

// ForContract lists invoices raised against one contract.
func (ic *InvoiceClient) ForContract(ctx context.Context, contractID string) ([]models.Invoice, error) {
	var out struct {
		Invoices []models.Invoice `json:"invoices"`
	}
	if err := ic.c.query(ctx, "/invoices/contracts/"+contractID, nil, []Tag{TagInvoice}, &out); err != nil {
		return nil, err
	}
	return out.Invoices, nil
}

func (ic *InvoiceClient) Approve(ctx context.Context, id string) error {
	return ic.c.mutate(ctx, http.MethodPost, "/invoices/"+id+"/approve", nil, nil, TagInvoice)
}

func (ic *InvoiceClient) Reject(ctx context.Context, id, reason string) error {
	body := map[string]string{"reason": reason}
	return ic.c.mutate(ctx, http.MethodPost, "/invoices/"+id+"/reject", body, nil, TagInvoice)
}

// MarkPaid records an out-of-band payment against an approved invoice.
func (ic *InvoiceClient) MarkPaid(ctx context.Context, id, reference string) error {
	body := map[string]string{"reference": reference}
	return ic.c.mutate(ctx, http.MethodPost, "/invoices/"+id+"/mark-paid", body, nil, TagInvoice, TagContract)
}

// ProcessPayment triggers backend payment processing for an approved invoice.
func (ic *InvoiceClient) ProcessPayment(ctx context.Context, id string) error {
	return ic.c.mutate(ctx, http.MethodPost, "/invoices/"+id+"/process-payment", nil, nil, TagInvoice, TagContract)
}
