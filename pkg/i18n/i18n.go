package i18n

type Messages struct {
	AppTitle          string
	BannerPrefix      string
	BannerSuffix      string
	BannerMode        string
	BannerFanOut      string
	BannerPath        string
	BannerSource      string
	BannerStartIndex  string
	BannerThreads     string
	BannerDifficulty  string
	BannerHint        string
	FoundHeader       string
	Address           string
	ChecksumAddress   string
	Mnemonic          string
	Index             string
	Path              string
	PrivateKey        string
	Matched           string // %s mode, %s component, %s text
	StatsHeader       string
	StatsMnemonics    string
	StatsAddresses    string
	StatsSkipped      string
	StatsElapsed      string
	StatsRate         string
	Progress          string // %s mnemonics, %s addresses, %s rate, %s eta
	Cancelled         string
	Calculating       string
	PassphrasePrompt  string
	SecretsNotice     string
	UnitSeconds       string
	UnitMinutes       string
	UnitHours         string
	UnitDays          string
	UnitMonths        string
	UnitYears         string
	AddressesPerSec   string
	ModeLowercase     string
	ModeChecksum      string
	ComponentPrefix   string
	ComponentSuffix   string
	DerivedFromRandom string
	DerivedFromFixed  string
}

func Get(lang string) Messages {
	switch lang {
	case "ru":
		return Messages{
			AppTitle:          "EthVanity — поиск красивого адреса",
			BannerPrefix:      "Префикс:",
			BannerSuffix:      "Суффикс:",
			BannerMode:        "Режим сравнения:",
			BannerFanOut:      "Адресов на мнемонику:",
			BannerPath:        "Путь деривации:",
			BannerSource:      "Источник:",
			BannerStartIndex:  "Начальный индекс:",
			BannerThreads:     "Потоков:",
			BannerDifficulty:  "Ожидаемо попыток:",
			BannerHint:        "Ctrl+C для остановки",
			FoundHeader:       "=== Адрес найден ===",
			Address:           "Адрес:",
			ChecksumAddress:   "Адрес (EIP-55):",
			Mnemonic:          "Мнемоника:",
			Index:             "Индекс:",
			Path:              "Путь:",
			PrivateKey:        "Приватный ключ:",
			Matched:           "Совпадение (%s) %s: %s",
			StatsHeader:       "=== Статистика ===",
			StatsMnemonics:    "Мнемоник обработано:",
			StatsAddresses:    "Адресов проверено:",
			StatsSkipped:      "Пропущено индексов:",
			StatsElapsed:      "Время:",
			StatsRate:         "Скорость:",
			Progress:          "мнемоник: %s | адресов: %s | %s адр/с | осталось ~%s",
			Cancelled:         "Поиск прерван, совпадение не найдено.",
			Calculating:       "вычисляется...",
			PassphrasePrompt:  "Введите BIP-39 passphrase: ",
			SecretsNotice:     "Храните мнемонику и ключ в безопасном месте.",
			UnitSeconds:       "сек",
			UnitMinutes:       "мин",
			UnitHours:         "ч",
			UnitDays:          "дн",
			UnitMonths:        "мес",
			UnitYears:         "лет",
			AddressesPerSec:   "адр/с",
			ModeLowercase:     "нижний регистр",
			ModeChecksum:      "checksum",
			ComponentPrefix:   "префикс",
			ComponentSuffix:   "суффикс",
			DerivedFromRandom: "случайные мнемоники",
			DerivedFromFixed:  "заданная мнемоника",
		}
	default: // "en"
		return Messages{
			AppTitle:          "EthVanity — vanity address search",
			BannerPrefix:      "Prefix:",
			BannerSuffix:      "Suffix:",
			BannerMode:        "Match mode:",
			BannerFanOut:      "Addresses per mnemonic:",
			BannerPath:        "Derivation path:",
			BannerSource:      "Source:",
			BannerStartIndex:  "Start index:",
			BannerThreads:     "Threads:",
			BannerDifficulty:  "Expected attempts:",
			BannerHint:        "Press Ctrl+C to stop",
			FoundHeader:       "=== Match found ===",
			Address:           "Address:",
			ChecksumAddress:   "Address (EIP-55):",
			Mnemonic:          "Mnemonic:",
			Index:             "Index:",
			Path:              "Path:",
			PrivateKey:        "Private key:",
			Matched:           "Matched %s %s: %s",
			StatsHeader:       "=== Statistics ===",
			StatsMnemonics:    "Mnemonics processed:",
			StatsAddresses:    "Addresses checked:",
			StatsSkipped:      "Indices skipped:",
			StatsElapsed:      "Elapsed:",
			StatsRate:         "Rate:",
			Progress:          "mnemonics: %s | addresses: %s | %s addr/s | ETA %s",
			Cancelled:         "Search cancelled, no match found.",
			Calculating:       "calculating...",
			PassphrasePrompt:  "Enter BIP-39 passphrase: ",
			SecretsNotice:     "Store the mnemonic and the key somewhere safe.",
			UnitSeconds:       "seconds",
			UnitMinutes:       "minutes",
			UnitHours:         "hours",
			UnitDays:          "days",
			UnitMonths:        "months",
			UnitYears:         "years",
			AddressesPerSec:   "addr/s",
			ModeLowercase:     "lowercase",
			ModeChecksum:      "checksum",
			ComponentPrefix:   "prefix",
			ComponentSuffix:   "suffix",
			DerivedFromRandom: "random mnemonics",
			DerivedFromFixed:  "fixed mnemonic",
		}
	}
}
