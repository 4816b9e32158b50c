package catalog

// products is the canonical product table. Order matters: the first entry is
// the fallback returned for unknown product ids. Callers never see these
// values directly; Lookup hands out clones.
var products = []ProductConfig{
	{
		ProductID:     "overgordijnen",
		ProductName:   "Overgordijnen",
		BasePrice:     40,
		MinWidth:      30,
		MaxWidth:      600,
		MinHeight:     30,
		MaxHeight:     350,
		DefaultWidth:  150,
		DefaultHeight: 260,
		Policy:        PolicyLinearMeter,
		Features: []Feature{
			{ID: "dubbele_plooi", Label: "Dubbele plooi", UnitPrice: 0, Description: "Klassieke dubbele plooi, +10% op de basisprijs"},
			{ID: "driedubbele_plooi", Label: "Driedubbele plooi", UnitPrice: 0, Description: "Vollere driedubbele plooi, +15% op de basisprijs"},
			{ID: "wave_plooi", Label: "Wave plooi", UnitPrice: 0, Description: "Moderne wave plooi, +20% op de basisprijs"},
			{ID: "voering", Label: "Voering", UnitPrice: 25, Description: "Extra voering voor isolatie en privacy"},
			{ID: "loodveter", Label: "Loodveter", UnitPrice: 15, Description: "Verzwaarde zoom voor een strakke val"},
			{ID: "montage", Label: "Montageservice", UnitPrice: 45},
		},
	},
	{
		ProductID:     "vitrages",
		ProductName:   "Vitrages",
		BasePrice:     25,
		MinWidth:      30,
		MaxWidth:      600,
		MinHeight:     30,
		MaxHeight:     350,
		DefaultWidth:  150,
		DefaultHeight: 260,
		Policy:        PolicyLinearMeter,
		Features: []Feature{
			{ID: "dubbele_plooi", Label: "Dubbele plooi", UnitPrice: 0, Description: "Klassieke dubbele plooi, +10% op de basisprijs"},
			{ID: "driedubbele_plooi", Label: "Driedubbele plooi", UnitPrice: 0, Description: "Vollere driedubbele plooi, +15% op de basisprijs"},
			{ID: "wave_plooi", Label: "Wave plooi", UnitPrice: 0, Description: "Moderne wave plooi, +20% op de basisprijs"},
			{ID: "loodveter", Label: "Loodveter", UnitPrice: 10, Description: "Verzwaarde zoom voor een strakke val"},
			{ID: "montage", Label: "Montageservice", UnitPrice: 45},
		},
	},
	{
		ProductID:     "rolgordijnen",
		ProductName:   "Rolgordijnen",
		BasePrice:     40,
		MinWidth:      40,
		MaxWidth:      300,
		MinHeight:     40,
		MaxHeight:     350,
		DefaultWidth:  100,
		DefaultHeight: 190,
		Policy:        PolicyArea,
		Features: []Feature{
			{ID: "verduisterend", Label: "Verduisterend doek", UnitPrice: 15, Description: "Lichtdicht doek, prijs schaalt mee met het oppervlak"},
			{ID: "cassette", Label: "Cassette", UnitPrice: 35, Description: "Aluminium cassette boven de buis"},
			{ID: "zijgeleiding", Label: "Zijgeleiding", UnitPrice: 20},
			{ID: "afstandsbediening", Label: "Elektrische bediening", UnitPrice: 120, Description: "Motor met afstandsbediening"},
			{ID: "montage", Label: "Montageservice", UnitPrice: 45},
		},
	},
	{
		ProductID:     "duo-rolgordijnen",
		ProductName:   "Duo rolgordijnen",
		BasePrice:     55,
		MinWidth:      40,
		MaxWidth:      300,
		MinHeight:     40,
		MaxHeight:     350,
		DefaultWidth:  100,
		DefaultHeight: 190,
		Policy:        PolicyArea,
		Features: []Feature{
			{ID: "verduisterend", Label: "Verduisterend doek", UnitPrice: 18, Description: "Lichtdicht doek, prijs schaalt mee met het oppervlak"},
			{ID: "cassette", Label: "Cassette", UnitPrice: 35, Description: "Aluminium cassette boven de buis"},
			{ID: "afstandsbediening", Label: "Elektrische bediening", UnitPrice: 120, Description: "Motor met afstandsbediening"},
			{ID: "montage", Label: "Montageservice", UnitPrice: 45},
		},
	},
}
