package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Purchase metric names
const (
	MetricNamePurchasesTotal          = "purchases_total"
	MetricNamePurchaseDuration        = "purchase_duration_seconds"
	MetricNamePointsDeductionAttempts = "points_deduction_attempts_total"
	MetricNameReconciliationGaps      = "purchase_reconciliation_gaps_total"
	MetricNameStaleClaimsFlagged      = "stale_claims_flagged_total"
	MetricNameItemsEquipped           = "items_equipped_total"
	MetricNameInventoryGrantsTotal    = "inventory_grants_total"
	MetricNameTokenCacheLookups       = "auth_token_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Purchase metric help text
const (
	HelpTextPurchasesTotal          = "Total number of purchase attempts by outcome"
	HelpTextPurchaseDuration        = "Purchase workflow latency in seconds"
	HelpTextPointsDeductionAttempts = "Points ledger deduction attempts by result"
	HelpTextReconciliationGaps      = "Purchases that left points and ownership out of step"
	HelpTextStaleClaimsFlagged      = "Pending purchase claims flagged as unresolved"
	HelpTextItemsEquipped           = "Total number of successful equips"
	HelpTextInventoryGrantsTotal    = "Ownership grants by result"
	HelpTextTokenCacheLookups       = "Bearer token cache lookups by result"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelReason  = "reason"
)

// Label values
const (
	ResultSuccess      = "success"
	ResultTransient    = "transient"
	ResultPermanent    = "permanent"
	ResultHit          = "hit"
	ResultMiss         = "miss"
	ResultAlreadyOwned = "already_owned"
	ResultNotFound     = "not_found"
	ResultError        = "error"

	ReasonGrantedElsewhere  = "granted_elsewhere"
	ReasonFulfillmentFailed = "fulfillment_failed"
	ReasonClaimCommit       = "claim_commit_failed"
	ReasonGlobalMark        = "global_mark_failed"
	ReasonClaimRelease      = "claim_release_failed"
	ReasonStaleClaim        = "stale_claim"
)

// UnmatchedRoute is the path label for requests no route matched.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Buckets
// ============================================================================

// HTTPLatencyBuckets covers fast reads up to slow purchases with retries
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}
