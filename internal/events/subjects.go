package events

const (
	StreamName   = "CROPWISE_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRecommendationCreated(recID string) string {
	return "agro.recommendation." + recID + ".created"
}

func SubjectCropCreated(cropID string) string { return "agro.crop." + cropID + ".created" }
func SubjectCropUpdated(cropID string) string { return "agro.crop." + cropID + ".updated" }
func SubjectCropDeleted(cropID string) string { return "agro.crop." + cropID + ".deleted" }

func SubjectMarketTrend(crop string) string { return "agro.market." + crop + ".trend" }
