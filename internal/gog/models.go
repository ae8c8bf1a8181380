package gog

// Installer is one downloadable artifact of a product.
// Fields are nil when the API omits them or sends null.
type Installer struct {
	ID        *string `json:"id,omitempty"`
	Name      *string `json:"name"`
	Version   *string `json:"version"`
	OS        *string `json:"os"`
	Language  *string `json:"language"`
	TotalSize *int64  `json:"total_size"`
}

// searchResponse is the body of the filtered search endpoint.
// Products is nil when the key is absent.
type searchResponse struct {
	Products *[]searchProduct `json:"products"`
}

type searchProduct struct {
	ID    *int64 `json:"id"`
	Title string `json:"title"`
}

// productResponse is the body of the product endpoint with expand=downloads.
type productResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Downloads *downloads `json:"downloads"`
}

type downloads struct {
	Installers *[]Installer `json:"installers"`
}
