package constants

// NATS subjects for domain events
const (
	SubjectProxyPurchased = "proxy.purchased"
	SubjectProxyProlonged = "proxy.prolonged"
	SubjectTopUpSettled   = "topup.settled"
)
