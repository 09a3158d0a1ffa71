package models

// StageInfo is the presentation triple for a pipeline stage, consumed by the
// UI layer. Pure lookup data, no I/O.
type StageInfo struct {
	Label       string `json:"label"`
	Variant     string `json:"variant"`
	Description string `json:"description"`
}

var stageInfos = map[BusinessStage]StageInfo{
	BusinessStageLead: {
		Label:       "Lead",
		Variant:     "secondary",
		Description: "New record, not yet contacted",
	},
	BusinessStageProspect: {
		Label:       "Prospect",
		Variant:     "default",
		Description: "First contact made, interest unconfirmed",
	},
	BusinessStageQualified: {
		Label:       "Qualified",
		Variant:     "info",
		Description: "Need and budget confirmed",
	},
	BusinessStageOfferSent: {
		Label:       "Offer sent",
		Variant:     "warning",
		Description: "Proposal delivered, awaiting reply",
	},
	BusinessStageOfferAccepted: {
		Label:       "Offer accepted",
		Variant:     "success",
		Description: "Proposal accepted, onboarding pending",
	},
	BusinessStageOfferDeclined: {
		Label:       "Offer declined",
		Variant:     "destructive",
		Description: "Proposal rejected",
	},
	BusinessStageCustomer: {
		Label:       "Customer",
		Variant:     "success",
		Description: "Active paying customer",
	},
	BusinessStageChurned: {
		Label:       "Churned",
		Variant:     "destructive",
		Description: "Former customer, relationship ended",
	},
}

// Info returns the presentation triple for the stage. Unknown stages fall
// back to a neutral rendering of the raw value.
func (s BusinessStage) Info() StageInfo {
	if info, ok := stageInfos[s]; ok {
		return info
	}
	return StageInfo{Label: string(s), Variant: "secondary"}
}

// AllStages lists the pipeline stages in pipeline order
func AllStages() []BusinessStage {
	return []BusinessStage{
		BusinessStageLead,
		BusinessStageProspect,
		BusinessStageQualified,
		BusinessStageOfferSent,
		BusinessStageOfferAccepted,
		BusinessStageOfferDeclined,
		BusinessStageCustomer,
		BusinessStageChurned,
	}
}
