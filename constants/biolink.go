package constants

// reserved property keys - these are lifted out of the free-form property maps
// returned by the property extractors and into dedicated node/edge fields
const (
	NodeName       = "name"
	NodeCategories = "categories"

	PrimaryKnowledgeSource     = "primary_knowledge_source"
	AggregatorKnowledgeSources = "aggregator_knowledge_sources"
)

// KGX JSON field names
const (
	KgxId        = "id"
	KgxName      = "name"
	KgxCategory  = "category"
	KgxSubject   = "subject"
	KgxPredicate = "predicate"
	KgxObject    = "object"
)

// MondoDisease is the catch-all disease used when a source row names no condition
const MondoDisease = "MONDO:0700096"
