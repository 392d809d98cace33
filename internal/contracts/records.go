package contracts

import "time"

type SupplierRecord struct {
	SupplierID   string       `json:"supplier_id"`
	Name         string       `json:"name"`
	Country      string       `json:"country"`
	Region       string       `json:"region,omitempty"`
	City         string       `json:"city,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Criticality  string       `json:"criticality"`
	Tier         string       `json:"tier"`
	Categories   []string     `json:"categories"`
	LeadTimeDays int          `json:"lead_time_days"`
	AnnualSpend  float64      `json:"annual_spend"`
}

type RiskRecord struct {
	RiskID                   string           `json:"risk_id"`
	SourceEventID            string           `json:"source_event_id"`
	Title                    string           `json:"title"`
	Description              string           `json:"description"`
	RiskScore                float64          `json:"risk_score"`
	RiskLevel                string           `json:"risk_level"`
	RiskType                 string           `json:"risk_type"`
	AffectedSuppliers        []SupplierRecord `json:"affected_suppliers"`
	AffectedSupplierCount    int              `json:"affected_supplier_count"`
	GeographicScope          string           `json:"geographic_scope,omitempty"`
	MitigationUrgency        string           `json:"mitigation_urgency"`
	EstimatedFinancialImpact float64          `json:"estimated_financial_impact"`
	EstimatedDelayDays       int              `json:"estimated_delay_days"`
	Confidence               float64          `json:"confidence"`
	HasCriticalSuppliers     bool             `json:"has_critical_suppliers"`
	TotalAffectedSpend       float64          `json:"total_affected_spend"`
	CreatedAt                time.Time        `json:"created_at"`
}

type AlertRecord struct {
	AlertID        string     `json:"alert_id"`
	RiskID         string     `json:"risk_id"`
	Priority       string     `json:"priority"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Channels       []string   `json:"channels"`
	Recipients     []string   `json:"recipients"`
	ActionRequired string     `json:"action_required,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	Acknowledged   bool       `json:"acknowledged"`
	AcknowledgedBy string     `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty"`
}

type CandidateRecord struct {
	SupplierID      string   `json:"supplier_id"`
	Name            string   `json:"name"`
	Country         string   `json:"country"`
	City            string   `json:"city,omitempty"`
	EvaluationScore float64  `json:"evaluation_score"`
	CategoryMatch   float64  `json:"category_match"`
	QualityScore    float64  `json:"quality_score"`
	CapacityScore   float64  `json:"capacity_score"`
	LeadTimeDays    int      `json:"lead_time_days"`
	CostPremiumPct  float64  `json:"cost_premium_pct"`
	Status          string   `json:"status"`
	Certifications  []string `json:"certifications,omitempty"`
	Recommendation  string   `json:"recommendation"`
}

type ActionRecord struct {
	ActionID         string    `json:"action_id"`
	ActionType       string    `json:"action_type"`
	Description      string    `json:"description"`
	Priority         string    `json:"priority"`
	Owner            string    `json:"owner"`
	DeadlineDays     int       `json:"deadline_days"`
	Deadline         time.Time `json:"deadline"`
	EstimatedCost    float64   `json:"estimated_cost"`
	BackupSupplierID string    `json:"backup_supplier_id,omitempty"`
	Status           string    `json:"status"`
}

type PlanRecord struct {
	PlanID                string            `json:"plan_id"`
	RiskID                string            `json:"risk_id"`
	Title                 string            `json:"title"`
	Description           string            `json:"description"`
	AffectedSupplierName  string            `json:"affected_supplier_name"`
	AffectedCategories    []string          `json:"affected_categories"`
	EstimatedRecoveryDays int               `json:"estimated_recovery_days"`
	TotalEstimatedCost    float64           `json:"total_estimated_cost"`
	Actions               []ActionRecord    `json:"actions"`
	RecommendedSuppliers  []CandidateRecord `json:"recommended_suppliers"`
	Status                string            `json:"status"`
	CreatedAt             time.Time         `json:"created_at"`
}

type ContractTerms struct {
	PaymentTerms    string `json:"payment_terms"`
	ShippingTerms   string `json:"shipping_terms"`
	QualityStandard string `json:"quality_standard"`
	LeadTimeDays    int    `json:"lead_time_days"`
	PenaltyClause   string `json:"penalty_clause"`
	ForceMajeure    string `json:"force_majeure"`
	Jurisdiction    string `json:"jurisdiction"`
	Currency        string `json:"currency"`
}

type ContractItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type ContractRecord struct {
	ContractID     string         `json:"contract_id"`
	RecoveryPlanID string         `json:"recovery_plan_id,omitempty"`
	SupplierName   string         `json:"supplier_name"`
	ContractType   string         `json:"contract_type"`
	Title          string         `json:"title"`
	TotalValue     float64        `json:"total_value"`
	DurationDays   int            `json:"duration_days"`
	Items          []ContractItem `json:"items"`
	Terms          ContractTerms  `json:"terms"`
	Status         string         `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
	ExpiryDate     time.Time      `json:"expiry_date"`
	Sections       []string       `json:"sections"`
}
