package clingen_dosage_sensitivity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/turbot/kgx-ingest-sdk/types"
)

const (
	notYetEvaluated    = "Not yet evaluated"
	autosomalRecessive = "Autosomal Recessive"
)

// scoreProperties maps a ClinGen dosage score to edge properties
//
//	no disease            -> negated
//	non-numeric score     -> not yet evaluated
//	0-3                   -> not negated, with score
//	30                    -> not negated, with score, autosomal recessive
//	40                    -> negated, with score
func scoreProperties(scoreValue, dosageType, diseaseId string) (types.Properties, error) {
	if diseaseId == "" {
		return types.Properties{"negated": true}, nil
	}
	score, err := strconv.Atoi(strings.TrimSpace(scoreValue))
	if err != nil {
		return types.Properties{"Status": notYetEvaluated}, nil
	}

	scoreKey := dosageType + "_Score"
	switch score {
	case 0, 1, 2, 3:
		return types.Properties{"negated": false, scoreKey: score}, nil
	case 30:
		return types.Properties{"negated": false, scoreKey: score, "mode_of_inheritence": autosomalRecessive}, nil
	case 40:
		return types.Properties{"negated": true, scoreKey: score}, nil
	default:
		return nil, fmt.Errorf("unexpected %s score %d for %s", dosageType, score, diseaseId)
	}
}
