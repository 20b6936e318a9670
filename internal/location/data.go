package location

var directoryData = []state{
	{
		name: "BIHAR",
		areas: []businessArea{
			{
				name: "PATNA",
				districts: []district{
					{name: "PATNA", blocks: []string{"BIHTA", "SAMPATCHAL", "PHULWARI", "BAKHTIYARPUR", "DINAPUR", "MANER", "PUNPUN", "KHUSRUPUR", "FATUHA", "DHANARUA", "BELCHCHI", "PALIGANJ", "ATHAMALGOLA", "PANDARAK", "BARH", "MOKAMA", "DULHIN BAZAR", "MASAURHI", "BIKRAM", "NAUBATPUR", "PATNA SADAR", "GHOSWARI", "DANIYAWAN"}},
					{name: "NALANDA", blocks: []string{"ISLAMPUR", "BIND", "KATRISARAI", "HARNAUT", "RAJGIR", "RAHUI", "NOORSARAI", "NAGAR NAUSA", "BIHARSHARIF", "SILAO", "HILSA", "EKANGARSARI", "GIRIAK", "KARAI PARUSURAI", "THARTHARI", "CHANDI", "PARBALPUR", "SARMERA", "BEN", "ASTHAWAN"}},
					{name: "BHOJPUR", blocks: []string{"AGIAON", "SHAHPUR", "SANDESH", "BARHARA", "SAHAR", "ARA", "KOLIWAR", "BEHEA", "TARARI", "PIRO", "CHARPOKHARI", "UDWANTNAGAR", "GARHANI", "JAGDISHPUR"}},
					{name: "BUXAR", blocks: []string{"NAWANAGAR", "BRAHMPUR", "DUMRAON", "CHAUSA", "CHOUGAIN", "ITARHI", "RAJPUR", "BUXAR", "SIMRI", "KESATH", "CHAKKI"}},
				},
			},
			{
				name: "GAYA",
				districts: []district{
					{name: "ROHTAS", blocks: []string{"SURAJPURA", "SANJHOULI", "DINARA", "CHENARI", "NAWHATTA", "DEHRI", "BIKRAMGANJ", "ROHTAS", "KOCHAS", "NOKHA", "TILOUTHU", "NASRIGANJ", "RAJUPUR", "SASARAM", "KARAKAT", "KARGAHAR", "DAWATH", "AKHORIGOLA", "SHEOSAGAR"}},
					{name: "NAWADA", blocks: []string{"MESCAUR", "NARHAT", "NARDIGANJ", "AKBARPUR", "GOBINDPUR", "ROH", "KASHICHAK", "RAJAULI", "PAKRI BARAWAN", "NAWADA", "WARISALIGANJ", "SIRDALA", "KAWAKOLE", "HISUA"}},
					{name: "ARWAL", blocks: []string{"ARWAL", "KALER", "KAPRI", "KURTHA", "SONBHADRA-BANSI-SURAJPUR"}},
					{name: "GAYA", blocks: []string{"DUMARIA", "KHIZARSARAI", "MOHRA", "GURARU", "IMAMGANJ", "BARACHATTI", "BODHGAYA", "ATRI", "AMAS", "PARAIYA", "WAZIRGANJ", "SHERGHATTY", "FATEHPUR", "MOHANPUR", "NEEMCHAK BATHANI", "MANPUR", "KONCH", "BELAGANJ", "GAYA TOWN", "TEKARI", "BANKEY BAZAR", "TANKUPPA", "DOBHI"}},
					{name: "JEHANABAD", blocks: []string{"KAKO", "JEHANABAD", "RATNI FARIDPUR", "GHOSHI", "HULASGNAJ", "MODANGANJ", "MAKHUMPUR"}},
					{name: "AURANGABAD", blocks: []string{"HASPURA", "KUTUMBA", "GOH", "BARUN", "RAFIGANJ", "NABINAGAR", "DEO", "DAUDNAGAR", "MADANPUR", "AURANGABAD", "OBRA"}},
					{name: "KAIMUR(BHABUA)", blocks: []string{"RAMGARH", "ADHAURA", "KUDRA", "BHABUA", "RAMPUR", "DURGAWATI", "MOHANIA", "BHAGWANPUR", "CHAND", "CHAINPUR", "NUAON"}},
				},
			},
			{
				name: "BHAGALPUR",
				districts: []district{
					{name: "SHEIKHPURA", blocks: []string{"ARIARI", "BARBIGHA", "CHEWARA", "GHAT KUSUMBHA", "SHEIKHOPUR SARAI", "SHEIKHPURA"}},
					{name: "MUNGER", blocks: []string{"DHARHARA", "JAMALPUR", "SANGRAMPUR", "TETIABAMBAR", "MUNGER SADAR", "BARIYARPUR", "TARAPUR", "ASARGANJ", "KHARAGPUR"}},
					{name: "BANKA", blocks: []string{"CHANNAN", "KATORIA", "AMARPUR", "BELHAR", "DHURAIYA", "BAUSI", "BANKA", "BARAHAT", "FULLIDUMAR", "RAJAUN", "SHAMBHUGANJ"}},
					{name: "LAKSHISARAI", blocks: []string{"BARAHIYA", "CHANNAN", "HALSI", "LAKHISARAI", "PIPARIYA", "RAMGARH CHOWK", "SURAJGARHA"}},
					{name: "BHAGALPUR", blocks: []string{"NARAYANPUR", "GORADIH", "PIRPAINTI", "NAUGACHHIA", "KHARIK", "SABOUR", "KAHALGAON", "RANGRACHOWK", "ISMAILPUR", "GOPALPUR", "SULTANGANJ", "NATHNAGAR", "SONHAULA", "JAGDISHPUR", "BIHPUR", "SHAHKUND"}},
					{name: "ARARIA", blocks: []string{"RANIGANJ", "FORBESGANJ", "KURSAKAΝΤΑ", "PALASI", "NARPATGANJ", "BHARGAMA", "JOKIHAT", "SIKTY", "ARARIA"}},
					{name: "PURNIA", blocks: []string{"RUPOULI", "SRINAGAR", "AMOUR", "BAISA", "BANMANKHI", "PURNIA EAST", "BARHARA", "DAGRAUA", "BAISI", "KRITYANAND NAGAR", "DHAMDAHA", "JALALGARH", "KASBA", "BHAWANIPUR"}},
					{name: "JAMUI", blocks: []string{"BARHAT", "SIKANDRA", "ISLAMNAGAR ALIGANJ", "JAMUI", "JHAJHA", "SONO", "KHAIRA", "LAXMIPUR", "GIDHOR", "CHAKAI"}},
					{name: "KATIHAR", blocks: []string{"MANIHARI", "DANDKHORA", "KADWA", "BALRAMPUR", "KORHA", "FALKA", "SAMELI", "HASANGANJ", "KURSELA", "MANSAHI", "KATIHAR", "AZAMNAGAR", "BARARI", "PRANPUR", "BARSOI", "AMDABAD"}},
					{name: "KISHANGANJ", blocks: []string{"POTHIA", "BAHADURGANJ", "THAKURGANJ", "DIGHALBANK", "KOCHADHAMAN", "TERHAGACHH", "KISHANGANJ"}},
				},
			},
			{
				name: "DARBHANGA",
				districts: []district{
					{name: "BEGUSARAI", blocks: []string{"GADHUPURA", "SAHEBPUR KAMAL", "BARAUNI", "DANDARI", "CHERIA BARIARPUR", "BEGUSARAI", "NAWKOTHI", "KHODAWANDPUR", "BALLIA", "BAKHRI", "TEGHRA", "BIRPUR", "BHAGWANPUR", "SAMHO AKHA KURHA", "MANSURCHAK", "CHHAURAHI", "BACHHWARA", "MATIHANI"}},
					{name: "SAHARSA", blocks: []string{"SOUR BAZAR", "KAHARA", "NAUHATTA", "SONBARSA", "BANMA ITAHARI", "SATTAR KATTAIYA", "SALKHUA", "PATARGHAT", "MAHISHI", "SIMRI BAKHTIARPUR"}},
					{name: "DARBHANGA", blocks: []string{"GHANSHYAMPUR", "KUSHESWAR ASTHAN EAST", "KUSHESHWAR ASTHAN", "DARBHANGA", "JALE", "HAYAGHAT", "BIRAUL", "SINGHWARA", "TARDIH", "MANIGACHHI", "HANUMAN NAGAR", "BENIPUR", "BAHERI", "GAURABAURAM", "KEOTIRUNWAY", "ALINAGAR", "BAHADURPUR", "KIRATPUR"}},
					{name: "MADHEPURA", blocks: []string{"UDA KISHANGANJ", "PURANI", "GHELARH", "GAMHARIYA", "SHANKARPUR", "CHAUSA", "ALAMNAGAR", "SINGHESHWAR", "GWALPARA", "MADHEPURA", "KUMARKHAND", "BIHARIGANJ", "MURLIGANJ"}},
					{name: "SAMASTIPUR", blocks: []string{"WARISNAGAR", "BITHAN", "SARAIRANJAN", "DALSINGHSARA", "KHANPUR", "MOHIUDDINAGAR", "VIDYAPATI NAGAR", "PATORI", "MORWA", "KALYANPUR", "ROSERA", "HASANPUR", "TAJPUR", "SAMASTIPUR", "MOHANPUR", "BIBHUTPUR", "PUSA", "SHIVAJI NAGAR", "SINGHIA", "UJIARPUR"}},
					{name: "MADHUBANI", blocks: []string{"PHULPARAS", "LAUKAHA (KHUTAUNA)", "RAJNAGAR", "LADANIA", "PANDAUL", "KALUAHI", "NIRMALI", "MADHWAPUR", "MADHEPUR", "JHANJHARPUR", "BABU BARHI", "GHOGHARDIHA", "BENIPATTI", "KHAJAULI", "BISFI", "LAKHNAUR", "RAHIKA", "MADHUBANI", "BASOPATTI", "MARAUNA", "ANDHRATHARHI", "LAUKAHI", "HARLAKHI", "JAINAGAR"}},
					{name: "SUPAUL", blocks: []string{"BASANTPUR", "TRIBENIGANJ", "KISHANPUR", "NIRMALI", "PRATAPGANJ", "SUPAUL", "SARAIGARH BHARTIYAHI", "RAGHOPUR", "CHHATAPUR", "PIPRA"}},
					{name: "KHAGARIA", blocks: []string{"MANSI", "GOGRI", "KHAGARIA", "BELDAUR", "CHAUTHAM", "PARBATTA", "ALAULI"}},
				},
			},
			{
				name: "MUZAFFARPUR",
				districts: []district{
					{name: "SIWAN", blocks: []string{"SIWAN", "GUTHANI", "MAIRWA", "BHAGWANPUR HAT", "DARAULI", "SISWAN", "DARAUNDHA", "RAGHUNATHPUR", "HUSSAINGANJ", "BARHARIA", "ANDAR", "BASANTPUR", "MAHARAJGANJ", "NAUTAN", "ZIRADEI", "PACHRUKHI", "HASAN PURA", "GORIAKOTHI", "LAKRI NABIGANJ"}},
					{name: "SITAMARHI", blocks: []string{"PARSAUNI", "RUNNISAIDPUR", "BATHANAHA", "PUPRI", "SUPPI", "SURSAND", "SONBARSA", "BAJPATTI", "MAJORGANJ", "CHORAUT", "BOKHRA", "NANPUR", "PARIHAR", "RIGA", "BELSAND", "BAIRGANIA", "DUMRA"}},
					{name: "VAISHALI", blocks: []string{"SAHDEI BUZURG", "MAHNAR", "HAJIPUR", "BIDUPUR", "VAISHALI", "MAHUA", "PATEDHI BELSAR", "RAJAPAKAR", "CHEHRAKALA", "JANDAHA", "RAGHOPUR", "PATEPUR", "GARAUL", "BHAGWANPUR", "DESRI", "LALGANJ"}},
					{name: "PASHCHIM CHAMPARAN", blocks: []string{"SIKTA", "THAKRAHAN", "MAJHAULIA", "PIPRASI", "BETTIAH", "MAINATAND", "LAURIYA", "BAGAHA-II", "NARKATIAGANJ", "NAUTAN", "RAMNAGAR", "BAGAHA-I", "CHANPATIA", "GAUNAHA", "BAIRIA", "MADHUBANI", "JOGAPATTI"}},
					{name: "SHEOHAR", blocks: []string{"DUMARI KATSARI", "PIPRAHI", "PURNAHIYA", "SHEOHAR", "TARIYANI"}},
					{name: "GOPALGANJ", blocks: []string{"BHOREY", "GOPALGANJ", "KATAIYA", "UCHKAGAON", "MANJHA", "SIDHWALIYA", "PHULWARIYA", "PANCHDEORI", "KUCHAIKOTE", "BARAULI", "BAIKUNTHPUR", "HATHUA", "THAWE", "BIJAIPUR"}},
					{name: "PURBI CHAMPARAN", blocks: []string{"CHAWRADANO", "BANJARIYA", "TETARIYA", "GHORASAHAN", "MEHSI", "RAXAUL", "RAMGARHWA", "CHIRAIYA", "KESARIA", "ADAPUR", "KOTWA", "SUGAULI", "TURKAULIA", "KALYANPUR", "PATAHI", "SANGRAMPUR", "DHAKA", "HARSIDHI", "PAKRIDAYAL", "MADHUBAN", "ARERAJ", "BANKATWA", "CHAKIA (PIPRA)", "MOTIHARI", "PAHARPUR", "PIPRA KOTHI", "PHENHARA"}},
					{name: "MUZAFFARPUR", blocks: []string{"MURAUL", "SARAIYA", "GAIGHAT", "BOCHAHAN", "MOTIPUR", "KURHANI", "SAHEBGANJ", "BANDRA", "MARWAN", "PAROO", "KANTI", "KATRA", "AURAI", "MINAPUR", "SAKRA", "MUSHAHARI"}},
					{name: "SARAN", blocks: []string{"TARAIYA", "ISUAPUR", "MARHAURAH", "BANIAPUR", "NAGRA", "DIGHWARA", "MAKER", "SONEPUR", "CHHAPRA", "GARKHA", "MASHRAKΗ", "PARSA", "JALALPUR", "EKMA", "MANJHI", "AMNOUR", "DARIAPUR", "LAHLADPUR", "PANAPUR", "REVELGANJ"}},
				},
			},
		},
	},
}
