package models

// PolicyInfo holds the app's legal texts
type PolicyInfo struct {
	ID             uint   `json:"id"`
	AboutUs        string `json:"about_us"`
	TermsCondition string `json:"terms_condition"`
	PrivacyPolicy  string `json:"privacy_policy"`
}

// BuyCourseInfo is the text shown on the purchase screen
type BuyCourseInfo struct {
	ID        uint   `json:"id"`
	Info      string `json:"info"`
	VideoLink string `json:"video_link"`
	PdfLink   string `json:"pdf_link"`
}
