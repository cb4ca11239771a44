package model

// UploadPolicy is an organization's file-upload constraint for one media
// category. A category without a policy row cannot accept uploads.
type UploadPolicy struct {
	OrgID            string        `json:"orgId"`
	Category         MediaCategory `json:"category"`
	MaxUploadBytes   int64         `json:"maxUploadBytes"`
	AllowedMimeTypes []string      `json:"allowedMimeTypes"`
}

// AllowsMime reports whether the content type is in the policy's allow-list.
func (p *UploadPolicy) AllowsMime(contentType string) bool {
	for _, m := range p.AllowedMimeTypes {
		if m == contentType {
			return true
		}
	}
	return false
}
