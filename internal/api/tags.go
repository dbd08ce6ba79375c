package api

// Tag labels cached query results with the resource type a mutation
// invalidates. One mutation on a tagged resource evicts every cached query
// holding that tag.
type Tag string

const (
	TagAuth         Tag = "Auth"
	TagOrganization Tag = "Organization"
	TagBuilding     Tag = "Building"
	TagVendor       Tag = "Vendor"
	TagCategory     Tag = "Category"
	TagRFQ          Tag = "RFQ"
	TagBid          Tag = "Bid"
	TagContract     Tag = "Contract"
	TagInvoice      Tag = "Invoice"
	TagRating       Tag = "Rating"
	TagDispute      Tag = "Dispute"
	TagAdmin        Tag = "Admin"
)
