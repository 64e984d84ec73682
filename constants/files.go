package constants

const (
	NodesFileName    = "nodes.jsonl"
	EdgesFileName    = "edges.jsonl"
	LockFileName     = ".kgx.lock"
	MetadataFileName = "metadata.yaml"
)

const DefaultCommentCharacter = "#"
