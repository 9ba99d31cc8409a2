package views

// Section anchors, in navigation order.
var anchors = []struct{ id, label string }{
	{"home", "Início"},
	{"about", "Sobre"},
	{"roadmap", "Roadmap"},
	{"showcase", "Coleção"},
	{"team", "Equipe"},
	{"faq", "FAQ"},
	{"contact", "Contato"},
}
