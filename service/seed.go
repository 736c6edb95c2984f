package service

import "github.com/acapellastudio313-lab/e-minutasii/model"

// SampleCases returns the records the store is seeded with at startup
func SampleCases() []model.CaseRecord {
	return []model.CaseRecord{
		{
			ID:             "1",
			CaseNumber:     "120/Pdt.G/2023/PN.Jkt.Pst",
			Year:           2023,
			Kind:           model.KindLawsuit,
			Classification: "Wanprestasi",
			Parties:        "PT. Maju Mundur vs CV. Abadi Jaya",
			DecisionDate:   "2023-11-15",
			FinalityDate:   "2023-12-01",
			Status:         model.StatusPending,
		},
		{
			ID:             "2",
			CaseNumber:     "45/Pdt.P/2024/PN.Jkt.Pst",
			Year:           2024,
			Kind:           model.KindPetition,
			Classification: "Ganti Nama",
			DecisionDate:   "2024-01-20",
			Status:         model.StatusCompleted,
			Location: &model.PhysicalLocation{
				Room:   "R. Arsip 1",
				Shelf:  "A-04",
				Drawer: "2",
				Box:    "115",
			},
			DocumentRef: "#",
		},
		{
			ID:             "3",
			CaseNumber:     "88/Pdt.G/2023/PN.Jkt.Pst",
			Year:           2023,
			Kind:           model.KindLawsuit,
			Classification: "Perbuatan Melawan Hukum",
			Parties:        "Budi Santoso vs Ahmad Dani",
			DecisionDate:   "2023-10-10",
			FinalityDate:   "2023-10-25",
			Status:         model.StatusPending,
		},
	}
}
