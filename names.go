package qurandata

import "strconv"

// surahNames holds the Turkish name and meaning of every surah, indexed by ID-1.
var surahNames = [SurahCount]struct {
	name    string
	meaning string
}{
	{"Fatiha", "Açılış"},
	{"Bakara", "İnek"},
	{"Âl-i İmran", "İmran Ailesi"},
	{"Nisâ", "Kadınlar"},
	{"Mâide", "Sofra"},
	{"En'âm", "Hayvanlar"},
	{"A'râf", "Yükseklikler"},
	{"Enfâl", "Ganimetler"},
	{"Tevbe", "Tövbe"},
	{"Yûnus", "Yunus"},
	{"Hûd", "Hud"},
	{"Yûsuf", "Yusuf"},
	{"Ra'd", "Gök Gürültüsü"},
	{"İbrâhîm", "İbrahim"},
	{"Hicr", "Hicr"},
	{"Nahl", "Arı"},
	{"İsrâ", "Gece Yolculuğu"},
	{"Kehf", "Mağara"},
	{"Meryem", "Meryem"},
	{"Tâhâ", "Tâhâ"},
	{"Enbiyâ", "Peygamberler"},
	{"Hac", "Hac"},
	{"Mü'minûn", "Müminler"},
	{"Nûr", "Işık"},
	{"Furkân", "Ayırıcı"},
	{"Şuarâ", "Şairler"},
	{"Neml", "Karınca"},
	{"Kasas", "Kıssalar"},
	{"Ankebût", "Örümcek"},
	{"Rûm", "Rumlar"},
	{"Lokmân", "Lokman"},
	{"Secde", "Secde"},
	{"Ahzâb", "Topluluklar"},
	{"Sebe'", "Sebe"},
	{"Fâtır", "Yaratan"},
	{"Yâsîn", "Ya-Sin"},
	{"Sâffât", "Saf Tutanlar"},
	{"Sâd", "Sad"},
	{"Zümer", "Gruplar"},
	{"Mü'min", "Mümin"},
	{"Fussilet", "Ayrıntılı"},
	{"Şûrâ", "Danışma"},
	{"Zuhruf", "Altın Süsler"},
	{"Duhân", "Duman"},
	{"Câsiye", "Diz Çöken"},
	{"Ahkâf", "Kum Tepeleri"},
	{"Muhammed", "Muhammed"},
	{"Fetih", "Fetih"},
	{"Hucurât", "Odalar"},
	{"Kâf", "Kaf"},
	{"Zâriyât", "Savuranlar"},
	{"Tûr", "Dağ"},
	{"Necm", "Yıldız"},
	{"Kamer", "Ay"},
	{"Rahmân", "Rahman"},
	{"Vâkıa", "Kıyamet"},
	{"Hadîd", "Demir"},
	{"Mücâdele", "Tartışma"},
	{"Haşr", "Toplanma"},
	{"Mümtehine", "Sınanan Kadın"},
	{"Saff", "Saf"},
	{"Cuma", "Cuma"},
	{"Münâfikûn", "Münafıklar"},
	{"Teğâbün", "Aldanma"},
	{"Talâk", "Boşanma"},
	{"Tahrîm", "Yasaklama"},
	{"Mülk", "Mülk"},
	{"Kalem", "Kalem"},
	{"Hâkka", "Gerçekleşen"},
	{"Meâric", "Yükseliş Yolları"},
	{"Nûh", "Nuh"},
	{"Cin", "Cinler"},
	{"Müzzemmil", "Örtünen"},
	{"Müddessir", "Bürünen"},
	{"Kıyâme", "Kıyamet"},
	{"İnsân", "İnsan"},
	{"Mürselât", "Gönderilenler"},
	{"Nebe'", "Haber"},
	{"Nâziât", "Çekip Çıkaranlar"},
	{"Abese", "Yüzünü Ekşitti"},
	{"Tekvîr", "Dürülme"},
	{"İnfitâr", "Parçalanma"},
	{"Mutaffifîn", "Eksik Ölçenler"},
	{"İnşikâk", "Yarılma"},
	{"Bürûc", "Burçlar"},
	{"Târık", "Gece Gelen"},
	{"A'lâ", "En Yüce"},
	{"Ğâşiye", "Kaplayan"},
	{"Fecr", "Şafak"},
	{"Beled", "Şehir"},
	{"Şems", "Güneş"},
	{"Leyl", "Gece"},
	{"Duhâ", "Kuşluk"},
	{"İnşirâh", "Ferahlama"},
	{"Tîn", "İncir"},
	{"Alak", "Asılan"},
	{"Kadr", "Kadir Gecesi"},
	{"Beyyine", "Açık Delil"},
	{"Zilzâl", "Deprem"},
	{"Âdiyât", "Koşanlar"},
	{"Kâria", "Çarpan"},
	{"Tekâsür", "Çokluk Yarışı"},
	{"Asr", "Asır"},
	{"Hümeze", "Dedikoducu"},
	{"Fîl", "Fil"},
	{"Kureyş", "Kureyş"},
	{"Mâûn", "Yardım"},
	{"Kevser", "Bolluk"},
	{"Kâfirûn", "Kafirler"},
	{"Nasr", "Zafer"},
	{"Tebbet", "Alev"},
	{"İhlâs", "Samimiyet"},
	{"Felak", "Sabah Aydınlığı"},
	{"Nâs", "İnsanlar"},
}

// SurahName returns the Turkish name and meaning of the surah with the given ID.
// The ok result is false if id is outside 1..SurahCount.
func SurahName(id int) (name, meaning string, ok bool) {
	if id < 1 || id > SurahCount {
		return "", "", false
	}
	e := surahNames[id-1]
	return e.name, e.meaning, true
}

// SurahNameOrDefault is like SurahName but falls back to "Surah <id>"
// with an empty meaning for unknown IDs.
func SurahNameOrDefault(id int) (name, meaning string) {
	if name, meaning, ok := SurahName(id); ok {
		return name, meaning
	}
	return "Surah " + strconv.Itoa(id), ""
}
