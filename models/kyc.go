package models

import "time"

// KYC statuses.
const (
	KYCStatusPending  = "pending"
	KYCStatusApproved = "approved"
	KYCStatusRejected = "rejected"
)

// KYCPersonalInfo is step 1 of the submission.
type KYCPersonalInfo struct {
	FullName    string `bson:"full_name" json:"fullName"`
	Email       string `bson:"email" json:"email"`
	Mobile      string `bson:"mobile" json:"mobile"`
	DateOfBirth string `bson:"date_of_birth,omitempty" json:"dateOfBirth,omitempty"`
	Gender      string `bson:"gender,omitempty" json:"gender,omitempty"`
}

// KYCIdentity is step 2: government ID details plus document URLs. Files are
// uploaded browser-to-Cloudinary; only the resulting URLs reach this service.
type KYCIdentity struct {
	IDType       string `bson:"id_type" json:"idType"` // "aadhaar", "pan", "passport"
	IDNumber     string `bson:"id_number" json:"idNumber"`
	FrontDocURL  string `bson:"front_doc_url" json:"frontDocUrl"`
	BackDocURL   string `bson:"back_doc_url,omitempty" json:"backDocUrl,omitempty"`
	SelfieDocURL string `bson:"selfie_doc_url,omitempty" json:"selfieDocUrl,omitempty"`
}

// KYCAddress is step 3.
type KYCAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Pincode string `bson:"pincode" json:"pincode"` // 6 digits
}

// KYCReference is step 4: a professional reference who can vouch for the
// applicant.
type KYCReference struct {
	Name     string `bson:"name" json:"name"`
	Relation string `bson:"relation" json:"relation"`
	Mobile   string `bson:"mobile" json:"mobile"`
}

// KYCSubmission is the complete document a therapist submits for review.
type KYCSubmission struct {
	ID           string          `bson:"id" json:"id"`
	TherapistID  string          `bson:"therapist_id" json:"therapistId"`
	PersonalInfo KYCPersonalInfo `bson:"personal_info" json:"personalInfo"`
	Identity     KYCIdentity     `bson:"identity" json:"identity"`
	Address      KYCAddress      `bson:"address" json:"address"`
	Reference    KYCReference    `bson:"reference" json:"reference"`
	Status       string          `bson:"status" json:"status"`
	ReviewNote   string          `bson:"review_note,omitempty" json:"reviewNote,omitempty"`
	ReviewedBy   string          `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`
	SubmittedAt  time.Time       `bson:"submitted_at" json:"submittedAt"`
	ReviewedAt   *time.Time      `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
}

// KYCReview is the admin decision payload.
type KYCReview struct {
	Approve bool   `json:"approve"`
	Note    string `json:"note,omitempty"`
}
