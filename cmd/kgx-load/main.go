package main

import (
	"os"

	"github.com/turbot/kgx-ingest-sdk/logging"

	// reference the loader packages to ensure the loaders are registered by their init functions
	_ "github.com/turbot/kgx-ingest-sdk/loaders/clingen_dosage_sensitivity"
	_ "github.com/turbot/kgx-ingest-sdk/loaders/clingen_gene_disease_validity"
	_ "github.com/turbot/kgx-ingest-sdk/loaders/ncbi_gene"
)

func main() {
	logging.Initialize("kgx-load")
	code := Execute()
	_ = logging.Close()
	os.Exit(code)
}
