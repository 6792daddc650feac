package generator

// Nova Iguaçu neighborhoods used as the base of every generated dataset.
var baseNeighborhoods = []string{
	"Austin", "Belmonte", "Belo Vale", "Humanitá", "Biquinha", "Boa Esperança",
	"Botujuru", "Brás de Pina", "Cachoeira Grande", "Cabral", "Cabuçu", "Califórnia",
	"Centro", "Cidade Olímpica", "Coroado", "Da Prata", "Donana", "Dona Elvira",
	"Dona Eulália", "Engenheiro Pedreira", "Fazenda da República", "Gato Grande",
	"Geraldo", "Guarujá", "Jardim Guandu", "Jardim Toronto", "Lote XV", "Miguel Couto",
	"Montese", "Moquetá", "Nova Aurora", "Nova Belém", "Nova Era", "Nova Posse",
	"Parque Fluminense", "Parque Nova Iguaçu", "Parque Presidente Vargas",
	"Ceramica", "Posse", "Quintino", "Riachão", "Riachinho", "Santa Eugênia",
	"Santa Inês", "Santa Rita", "Corumba", "São Bento", "Santo Antônio",
	"Santo Elias", "Carmari", "Tingui", "Tingui Mirim", "Tinguá",
	"Três Bocas", "Vila de Cava", "Vila da Sapê", "Vila São João", "Vila Tinguá",
	"Vila União", "Zumbi", "Bairro da Luz", "Comendador Soares", "Morro do Barão",
	"Morro do Castro", "Morro do Escorrega", "Morro do Fogueteiro", "Morro do São João",
}

// Census populations for the neighborhoods that have one.
var realPopulation = map[string]int{
	"Centro":            25806,
	"Bairro da Luz":     23823,
	"Moquetá":           7106,
	"Comendador Soares": 23431,
	"Austin":            23216,
	"Miguel Couto":      6831,
	"Tinguá":            4094,
	"Cabuçu":            29731,
	"Posse":             10921,
	"Vila de Cava":      16413,
}
