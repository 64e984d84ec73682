package helpers

import (
	"fmt"
	"net/url"
	"strings"
)

// GffAttributes is the parsed attribute column of a GFF3 record
// each value is a list - single values are a list of one
type GffAttributes map[string][]string

// ParseGffAttributes parses a GFF3 attribute column of the form key=value;key=v1,v2
// values are percent-decoded after splitting on commas, values with invalid escapes are left undecoded
func ParseGffAttributes(attr string) (GffAttributes, error) {
	res := make(GffAttributes)
	for _, kv := range strings.Split(attr, ";") {
		if kv == "" {
			continue
		}
		k, v, ok := strings.Cut(kv, "=")
		if !ok || strings.Contains(v, "=") {
			return nil, fmt.Errorf("malformed gff attribute %q", kv)
		}
		var values []string
		for _, item := range strings.Split(v, ",") {
			// a malformed escape is kept as written
			if decoded, err := url.PathUnescape(item); err == nil {
				item = decoded
			}
			values = append(values, item)
		}
		res[k] = values
	}
	return res, nil
}

// Dbxref returns the database cross references, keyed by database name
// "HGNC:HGNC:5" is returned under key HGNC as ["HGNC", "5"]
func (a GffAttributes) Dbxref() (map[string][]string, error) {
	xrefs, ok := a["Dbxref"]
	if !ok {
		return nil, fmt.Errorf("gff attributes have no Dbxref")
	}
	res := make(map[string][]string, len(xrefs))
	for _, item := range xrefs {
		parts := strings.Split(item, ":")
		res[parts[0]] = parts[1:]
	}
	return res, nil
}

// GeneAndHgncIds returns the NCBI gene id and the HGNC id from the Dbxref attribute
func (a GffAttributes) GeneAndHgncIds() (geneId string, hgncId string, err error) {
	xrefs, err := a.Dbxref()
	if err != nil {
		return "", "", err
	}
	gene, hasGene := xrefs["GeneID"]
	hgnc, hasHgnc := xrefs["HGNC"]
	if !hasGene || !hasHgnc || len(gene) == 0 || len(hgnc) == 0 {
		return "", "", fmt.Errorf("gff Dbxref has no GeneID and HGNC pair")
	}
	return gene[0], hgnc[len(hgnc)-1], nil
}
