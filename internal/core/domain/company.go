package domain

// CompanySettings holds the issuing company's identity as printed on documents.
type CompanySettings struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website"`
	Siret     string `json:"siret"`
	VATNumber string `json:"vatNumber"` // Intra-community VAT number
	Currency  string `json:"currency"`
	LogoURL   string `json:"logoURL,omitempty"`
}
