package dto

import "skillswap/internal/usecase"

type MatchResponse struct {
	Candidate       CounterpartResponse `json:"candidate"`
	SkillsICanOffer []SkillResponse     `json:"skills_i_can_offer"`
	SkillsICanGet   []SkillResponse     `json:"skills_i_can_get"`
}

func FromMatchItem(m usecase.MatchItem) MatchResponse {
	return MatchResponse{
		Candidate:       FromCounterpart(m.Candidate),
		SkillsICanOffer: FromSkills(m.SkillsICanOffer),
		SkillsICanGet:   FromSkills(m.SkillsICanGet),
	}
}

func FromMatchItems(in []usecase.MatchItem) []MatchResponse {
	out := make([]MatchResponse, 0, len(in))
	for _, m := range in {
		out = append(out, FromMatchItem(m))
	}
	return out
}
