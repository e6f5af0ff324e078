package auth

// GoogleStatusResponse reports whether the user's Google account is linked
type GoogleStatusResponse struct {
	Connected bool `json:"connected"`
}

// AuthURLResponse carries the Google consent URL to redirect to
type AuthURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
