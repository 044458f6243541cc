package constants

// Entity labels produced by the NER provider. Only these two drive extraction;
// anything else in a provider response is carried through and ignored.
const (
	LabelPerson = "PERSON"
	LabelOrg    = "ORG"
)

// NoCompaniesDetected is the sentinel returned when every company candidate was
// filtered out and the entity fallback found nothing. It is always the only
// element of the list, never mixed with real candidates.
const NoCompaniesDetected = "No companies detected"
