package contact_link

// ContactLinkResponse HTTP response model
type ContactLinkResponse struct {
	URL string `json:"url"`
}
