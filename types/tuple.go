package types

// Tuple is one logical record produced from a source row
// It is the unit handed to the record stage of the extractor, and the element type
// of programmatically generated sources
type Tuple struct {
	SubjectId    Optional[string]
	ObjectId     Optional[string]
	Predicate    Optional[string]
	SubjectProps Properties
	ObjectProps  Properties
	EdgeProps    Properties
}
