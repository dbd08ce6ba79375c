package api

// Clients bundles one resource client per backend domain, all sharing a
// single HTTP core and cache.
type Clients struct {
	Auth          *AuthClient
	Organizations *OrganizationClient
	Buildings     *BuildingClient
	Vendors       *VendorClient
	Categories    *CategoryClient
	RFQs          *RFQClient
	Bids          *BidClient
	Contracts     *ContractClient
	Invoices      *InvoiceClient
	Ratings       *RatingClient
	Disputes      *DisputeClient
	Admin         *AdminClient
}

// NewClients wires every resource client onto a shared core.
func NewClients(c *Client) *Clients {
	return &Clients{
		Auth:          &AuthClient{c: c},
		Organizations: &OrganizationClient{c: c},
		Buildings:     &BuildingClient{c: c},
		Vendors:       &VendorClient{c: c},
		Categories:    &CategoryClient{c: c},
		RFQs:          &RFQClient{c: c},
		Bids:          &BidClient{c: c},
		Contracts:     &ContractClient{c: c},
		Invoices:      &InvoiceClient{c: c},
		Ratings:       &RatingClient{c: c},
		Disputes:      &DisputeClient{c: c},
		Admin:         &AdminClient{c: c},
	}
}
