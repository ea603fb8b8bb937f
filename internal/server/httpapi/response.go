package httpapi

// Response is the JSON body returned by every command.
type Response struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
}

// DownloadResponse extends Response with the payload-encoding flag; only the
// get command carries it, matching the wire contract.
type DownloadResponse struct {
	Success         bool   `json:"success"`
	Data            string `json:"data,omitempty"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}
