package usecase

// Lexicons used by the ticker extractor and the sentiment analyzer.
// Ticker sets hold upper-case symbols, word sets hold lower-case words.

type wordSet map[string]struct{}

func (s wordSet) has(w string) bool {
	_, ok := s[w]
	return ok
}

// companyName maps a company name to its ticker
type companyName struct {
	name   string
	ticker string
}

// companyNames are matched as whole words, in this order
var companyNames = []companyName{
	{"TESLA", "TSLA"},
	{"NVIDIA", "NVDA"},
	{"APPLE", "AAPL"},
	{"MICROSOFT", "MSFT"},
	{"AMAZON", "AMZN"},
	{"GOOGLE", "GOOGL"},
	{"ALPHABET", "GOOGL"},
	{"PALANTIR", "PLTR"},
	{"COINBASE", "COIN"},
	{"ROBINHOOD", "HOOD"},
	{"GAMESTOP", "GME"},
	{"SUPERMICRO", "SMCI"},
	{"BROADCOM", "AVGO"},
	{"MICRON", "MU"},
	{"QUALCOMM", "QCOM"},
	{"NETFLIX", "NFLX"},
	{"DISNEY", "DIS"},
	{"PAYPAL", "PYPL"},
	{"SNOWFLAKE", "SNOW"},
	{"CROWDSTRIKE", "CRWD"},
	{"ROCKETLAB", "RKLB"},
	{"ROCKET", "RKLB"},
	{"SPACEX", "SPACEX"},
	{"DATADOG", "DDOG"},
	{"SALESFORCE", "CRM"},
	{"ORACLE", "ORCL"},
	{"ADOBE", "ADBE"},
	{"INTEL", "INTC"},
	{"COSTCO", "COST"},
	{"WALMART", "WMT"},
	{"TARGET", "TGT"},
	{"STARBUCKS", "SBUX"},
	{"MCDONALDS", "MCD"},
	{"CHIPOTLE", "CMG"},
	{"BOEING", "BA"},
	{"LOCKHEED", "LMT"},
}

// knownTickers are commonly discussed symbols recognised without a $ prefix
var knownTickers = wordSet{
	"AAPL": {}, "MSFT": {}, "GOOGL": {}, "GOOG": {}, "AMZN": {}, "NVDA": {}, "META": {}, "TSLA": {}, "BRK": {}, "BRKB": {}, "TSM": {}, "AVGO": {},
	"LLY": {}, "JPM": {}, "UNH": {}, "V": {}, "MA": {}, "XOM": {}, "JNJ": {}, "WMT": {}, "AMD": {}, "INTC": {}, "MU": {}, "QCOM": {},
	"TXN": {}, "AMAT": {}, "LRCX": {}, "KLAC": {}, "ADI": {}, "MRVL": {}, "NXPI": {}, "MCHP": {}, "ON": {}, "SWKS": {}, "QRVO": {}, "MPWR": {},
	"SMCI": {}, "ARM": {}, "ASML": {}, "SNPS": {}, "CDNS": {}, "ANSS": {}, "WOLF": {}, "SLAB": {}, "CRUS": {}, "MKSI": {}, "ENTG": {}, "ACLS": {},
	"COHR": {}, "IPGP": {}, "CRM": {}, "ORCL": {}, "ADBE": {}, "NOW": {}, "INTU": {}, "PANW": {}, "CRWD": {}, "SNOW": {}, "DDOG": {}, "ZS": {},
	"NET": {}, "PLTR": {}, "MDB": {}, "ESTC": {}, "SPLK": {}, "TEAM": {}, "OKTA": {}, "ZM": {}, "TWLO": {}, "HUBS": {}, "DOCU": {}, "WDAY": {},
	"VEEV": {}, "RNG": {}, "BILL": {}, "PATH": {}, "DOCN": {}, "CFLT": {}, "MNDY": {}, "GTLB": {}, "S": {}, "TENB": {}, "CYBR": {}, "FTNT": {},
	"RPD": {}, "QLYS": {}, "VRNS": {}, "SAIL": {}, "SMAR": {}, "APPN": {}, "IONQ": {}, "RGTI": {}, "QBTS": {}, "QUBT": {}, "ARQQ": {}, "SOUN": {},
	"BBAI": {}, "AI": {}, "UPST": {}, "CXAI": {}, "NFLX": {}, "SPOT": {}, "ROKU": {}, "TTD": {}, "PINS": {}, "SNAP": {}, "RBLX": {}, "U": {},
	"TTWO": {}, "EA": {}, "MTCH": {}, "BMBL": {}, "YELP": {}, "TRIP": {}, "EXPE": {}, "BKNG": {}, "ABNB": {}, "UBER": {}, "LYFT": {}, "DASH": {},
	"GRUB": {}, "DKNG": {}, "PENN": {}, "CHWY": {}, "ETSY": {}, "EBAY": {}, "MELI": {}, "SE": {}, "SHOP": {}, "SQ": {}, "PYPL": {}, "AFRM": {},
	"SOFI": {}, "HOOD": {}, "COIN": {}, "LC": {}, "MQ": {}, "FOUR": {}, "PAYO": {}, "DLO": {}, "STNE": {}, "PAGS": {}, "XP": {}, "NU": {},
	"TOST": {}, "FLYW": {}, "OUST": {}, "BAC": {}, "WFC": {}, "C": {}, "GS": {}, "MS": {}, "SCHW": {}, "BLK": {}, "BX": {}, "KKR": {},
	"APO": {}, "ARES": {}, "OWL": {}, "TROW": {}, "IVZ": {}, "BEN": {}, "AMG": {}, "LPLA": {}, "RJF": {}, "SEIC": {}, "USB": {}, "PNC": {},
	"TFC": {}, "MTB": {}, "FITB": {}, "KEY": {}, "RF": {}, "HBAN": {}, "CFG": {}, "ZION": {}, "AXP": {}, "COF": {}, "DFS": {}, "SYF": {},
	"ALLY": {}, "NAVI": {}, "SLM": {}, "FCNCA": {}, "WAL": {}, "EWBC": {}, "PFE": {}, "ABBV": {}, "MRK": {}, "TMO": {}, "ABT": {}, "DHR": {},
	"BMY": {}, "AMGN": {}, "GILD": {}, "VRTX": {}, "REGN": {}, "MRNA": {}, "BNTX": {}, "BIIB": {}, "ILMN": {}, "ISRG": {}, "DXCM": {}, "PODD": {},
	"ALGN": {}, "IDXX": {}, "IQV": {}, "CRL": {}, "RVTY": {}, "TECH": {}, "BIO": {}, "A": {}, "WAT": {}, "ZBH": {}, "SYK": {}, "BSX": {},
	"MDT": {}, "EW": {}, "HCA": {}, "CVS": {}, "CI": {}, "ELV": {}, "HUM": {}, "CNC": {}, "MOH": {}, "UHS": {}, "SGRY": {}, "DVA": {},
	"HIMS": {}, "DOCS": {}, "TDOC": {}, "OSCR": {}, "CLOV": {}, "COST": {}, "TGT": {}, "HD": {}, "LOW": {}, "DLTR": {}, "DG": {}, "FIVE": {},
	"OLLI": {}, "BJ": {}, "BABA": {}, "JD": {}, "PDD": {}, "CPNG": {}, "W": {}, "OSTK": {}, "REAL": {}, "CVNA": {}, "CARG": {}, "AN": {},
	"LAD": {}, "KMX": {}, "SIG": {}, "ULTA": {}, "SEPHORA": {}, "EL": {}, "TPR": {}, "RL": {}, "PVH": {}, "VFC": {}, "HBI": {}, "UAA": {},
	"LULU": {}, "NKE": {}, "DECK": {}, "CROX": {}, "SKX": {}, "WWW": {}, "SHOO": {}, "GPS": {}, "ANF": {}, "AEO": {}, "URBN": {}, "EXPR": {},
	"TLRD": {}, "BURL": {}, "TJX": {}, "ROST": {}, "WSM": {}, "RH": {}, "BBWI": {}, "WRBY": {}, "FIGS": {}, "BROS": {}, "SBUX": {}, "MCD": {},
	"CMG": {}, "QSR": {}, "WEN": {}, "DPZ": {}, "PZZA": {}, "YUM": {}, "WING": {}, "SHAK": {}, "JACK": {}, "DNUT": {}, "DIN": {}, "CAKE": {},
	"EAT": {}, "TXRH": {}, "BLMN": {}, "DRI": {}, "CBRL": {}, "PLAY": {}, "SIX": {}, "FUN": {}, "SEAS": {}, "CNK": {}, "IMAX": {}, "PEP": {},
	"KO": {}, "MNST": {}, "CELH": {}, "KDP": {}, "TAP": {}, "SAM": {}, "STZ": {}, "DEO": {}, "BF": {}, "PM": {}, "MO": {}, "BTI": {},
	"TPB": {}, "TLRY": {}, "CGC": {}, "ACB": {}, "CRON": {}, "SNDL": {}, "VFF": {}, "RIVN": {}, "LCID": {}, "NIO": {}, "XPEV": {}, "LI": {},
	"FSR": {}, "NKLA": {}, "RIDE": {}, "WKHS": {}, "GOEV": {}, "FFIE": {}, "MULN": {}, "VFS": {}, "PTRA": {}, "ARVL": {}, "LEV": {}, "HYLN": {},
	"EVGO": {}, "CHPT": {}, "BLNK": {}, "VLTA": {}, "DCFC": {}, "QS": {}, "MVST": {}, "SLDP": {}, "FREY": {}, "FREYR": {}, "ENVX": {}, "AMPX": {},
	"F": {}, "GM": {}, "TM": {}, "HMC": {}, "RACE": {}, "STLA": {}, "VWAGY": {}, "BMWYY": {}, "MBGAF": {}, "POAHY": {}, "BA": {}, "LMT": {},
	"RTX": {}, "NOC": {}, "GD": {}, "HII": {}, "LHX": {}, "TDG": {}, "TXT": {}, "HWM": {}, "CAT": {}, "DE": {}, "PCAR": {}, "CMI": {},
	"AGCO": {}, "CNHI": {}, "TEX": {}, "ASTE": {}, "OSK": {}, "WNC": {}, "GE": {}, "HON": {}, "MMM": {}, "EMR": {}, "ROK": {}, "AME": {},
	"PH": {}, "ITW": {}, "NDSN": {}, "MIDD": {}, "URI": {}, "HEES": {}, "WSC": {}, "ACM": {}, "PWR": {}, "EME": {}, "FIX": {}, "MTZ": {},
	"AROC": {}, "TPC": {}, "FDX": {}, "UPS": {}, "DAL": {}, "UAL": {}, "AAL": {}, "LUV": {}, "ALK": {}, "JBLU": {}, "SAVE": {}, "HA": {},
	"JBHT": {}, "KNX": {}, "ODFL": {}, "SAIA": {}, "XPO": {}, "GXO": {}, "CHRW": {}, "EXPD": {}, "LSTR": {}, "HUBG": {}, "CVX": {}, "COP": {},
	"EOG": {}, "SLB": {}, "MPC": {}, "VLO": {}, "PSX": {}, "OXY": {}, "PXD": {}, "DVN": {}, "FANG": {}, "HAL": {}, "BKR": {}, "NOV": {},
	"HP": {}, "OII": {}, "RIG": {}, "VAL": {}, "DO": {}, "AR": {}, "RRC": {}, "EQT": {}, "SWN": {}, "CNX": {}, "CTRA": {}, "MTDR": {},
	"CHRD": {}, "PR": {}, "GPOR": {}, "NEE": {}, "DUK": {}, "SO": {}, "D": {}, "AEP": {}, "XEL": {}, "SRE": {}, "ED": {}, "EIX": {},
	"WEC": {}, "ES": {}, "AWK": {}, "ATO": {}, "NI": {}, "CMS": {}, "DTE": {}, "FE": {}, "PPL": {}, "EVRG": {}, "AES": {}, "PLUG": {},
	"FCEL": {}, "BLDP": {}, "BE": {}, "BLOOM": {}, "ENPH": {}, "SEDG": {}, "RUN": {}, "NOVA": {}, "ARRY": {}, "SHLS": {}, "MAXN": {}, "SPWR": {},
	"FSLR": {}, "CSIQ": {}, "JKS": {}, "DQ": {}, "FLNC": {}, "STEM": {}, "GEVO": {}, "AMT": {}, "PLD": {}, "EQIX": {}, "CCI": {}, "PSA": {},
	"DLR": {}, "SBAC": {}, "O": {}, "WELL": {}, "AVB": {}, "EQR": {}, "VTR": {}, "ARE": {}, "MAA": {}, "UDR": {}, "ESS": {}, "CPT": {},
	"SUI": {}, "ELS": {}, "INVH": {}, "MPW": {}, "PEAK": {}, "DOC": {}, "HR": {}, "OHI": {}, "CTRE": {}, "SBRA": {}, "LTC": {}, "NHI": {},
	"GMRE": {}, "LIN": {}, "APD": {}, "SHW": {}, "DD": {}, "DOW": {}, "PPG": {}, "ECL": {}, "EMN": {}, "ALB": {}, "FMC": {}, "NEM": {},
	"FCX": {}, "NUE": {}, "STLD": {}, "CLF": {}, "X": {}, "AA": {}, "SCCO": {}, "TECK": {}, "RIO": {}, "BHP": {}, "VALE": {}, "MT": {},
	"BTU": {}, "ARCH": {}, "CNR": {}, "HCC": {}, "AMR": {}, "CEIX": {}, "ARLP": {}, "MP": {}, "LAC": {}, "LTHM": {}, "SQM": {}, "LTBR": {},
	"UUUU": {}, "DNN": {}, "NXE": {}, "URG": {}, "CCJ": {}, "RKLB": {}, "LUNR": {}, "RDW": {}, "ASTS": {}, "BKSY": {}, "SPIR": {}, "PL": {},
	"VORB": {}, "ASTR": {}, "MNTS": {}, "MSTR": {}, "MARA": {}, "RIOT": {}, "CLSK": {}, "IREN": {}, "HUT": {}, "BITF": {}, "BTBT": {}, "CIFR": {},
	"EBON": {}, "CORZ": {}, "ARBK": {}, "GREE": {}, "BTDR": {}, "WULF": {}, "BTCM": {}, "ETOR": {}, "SATO": {}, "DGHI": {}, "IBIT": {}, "GBTC": {},
	"FBTC": {}, "ARKB": {}, "BITB": {}, "HODL": {}, "BRRR": {}, "BTCO": {}, "DEFI": {}, "EZBC": {}, "ETHE": {}, "ETHV": {}, "CETH": {}, "FETH": {},
	"ETHA": {}, "MSTU": {}, "MSTX": {}, "MSTZ": {}, "CONL": {}, "GME": {}, "AMC": {}, "BB": {}, "NOK": {}, "BBBY": {}, "KOSS": {}, "NAKD": {},
	"WISH": {}, "DWAC": {}, "PHUN": {}, "MARK": {}, "SPCE": {}, "SKLZ": {}, "PLBY": {}, "BYND": {}, "CRSR": {}, "NNDM": {}, "SPRT": {}, "ATER": {},
	"IRNT": {}, "SDC": {}, "PROG": {}, "BBIG": {}, "TYDE": {}, "CEI": {}, "OCGN": {}, "AGRX": {}, "BIOR": {}, "SAVA": {}, "SRNE": {}, "EDSA": {},
	"DJT": {}, "SMFL": {}, "RDDT": {}, "SPY": {}, "QQQ": {}, "IWM": {}, "DIA": {}, "VOO": {}, "VTI": {}, "VTV": {}, "VUG": {}, "VGT": {},
	"VHT": {}, "VNQ": {}, "VWO": {}, "VEA": {}, "VIG": {}, "SCHD": {}, "JEPI": {}, "JEPQ": {}, "QYLD": {}, "XYLD": {}, "RYLD": {}, "XLF": {},
	"XLE": {}, "XLK": {}, "XLV": {}, "XLI": {}, "XLY": {}, "XLP": {}, "XLU": {}, "XLB": {}, "XLRE": {}, "IYR": {}, "ITB": {}, "XHB": {},
	"KRE": {}, "KBE": {}, "OIH": {}, "XOP": {}, "AMLP": {}, "MLPA": {}, "TAN": {}, "ICLN": {}, "PBW": {}, "QCLN": {}, "LIT": {}, "BATT": {},
	"DRIV": {}, "IDRV": {}, "CARZ": {}, "KOMP": {}, "ARKK": {}, "ARKW": {}, "ARKF": {}, "ARKG": {}, "ARKQ": {}, "ARKX": {}, "PRNT": {}, "IZRL": {},
	"MOON": {}, "ROBO": {}, "BOTZ": {}, "HACK": {}, "BUG": {}, "CIBR": {}, "WCLD": {}, "SKYY": {}, "CLOU": {}, "IGV": {}, "SOXX": {}, "SMH": {},
	"PSI": {}, "SOXL": {}, "SOXS": {}, "TQQQ": {}, "SQQQ": {}, "QLD": {}, "QID": {}, "SPXL": {}, "SPXS": {}, "SPXU": {}, "UPRO": {}, "TNA": {},
	"TZA": {}, "LABU": {}, "LABD": {}, "FAS": {}, "FAZ": {}, "ERX": {}, "ERY": {}, "NUGT": {}, "DUST": {}, "JNUG": {}, "JDST": {}, "GUSH": {},
	"DRIP": {}, "BOIL": {}, "KOLD": {}, "UCO": {}, "SCO": {}, "USO": {}, "UNG": {}, "UVXY": {}, "SVXY": {}, "VXX": {}, "VIXY": {}, "SVOL": {},
	"VIXM": {}, "SPX": {}, "NDX": {}, "VIX": {}, "RUT": {}, "DJI": {}, "CPI": {}, "PPI": {}, "PCE": {}, "GDP": {}, "NFP": {}, "JOBS": {},
	"FOMC": {}, "FED": {}, "OPEC": {}, "BTC": {}, "ETH": {}, "SOL": {}, "XRP": {}, "DOGE": {}, "ADA": {}, "AVAX": {}, "DOT": {}, "LINK": {},
	"MATIC": {}, "SHIB": {}, "BCH": {}, "UNI": {}, "AAVE": {}, "MKR": {}, "ATOM": {}, "FIL": {}, "ICP": {}, "APT": {},
}

// ignoreWords look like tickers but almost never mean one in chat
var ignoreWords = wordSet{
	"ALL": {}, "ARE": {}, "BIG": {}, "BUY": {}, "CAN": {}, "CEO": {}, "DAY": {}, "DID": {}, "EOD": {}, "FOR": {}, "GET": {}, "GOT": {},
	"HAS": {}, "HER": {}, "HIM": {}, "HIS": {}, "HOW": {}, "ITS": {}, "LET": {}, "LOT": {}, "LOW": {}, "MAN": {}, "MAY": {}, "NEW": {},
	"NOT": {}, "NOW": {}, "OLD": {}, "ONE": {}, "OUR": {}, "OUT": {}, "OWN": {}, "RUN": {}, "SAW": {}, "SAY": {}, "SEE": {}, "SET": {},
	"SHE": {}, "THE": {}, "TOO": {}, "TRY": {}, "TWO": {}, "USE": {}, "WAS": {}, "WAY": {}, "WHO": {}, "WHY": {}, "WIN": {}, "WON": {},
	"YES": {}, "YET": {}, "YOU": {}, "JUST": {}, "KNOW": {}, "LIKE": {}, "LOOK": {}, "MAKE": {}, "MORE": {}, "MOST": {}, "MUCH": {}, "MUST": {},
	"NEXT": {}, "ONLY": {}, "OVER": {}, "SAME": {}, "SELF": {}, "SOME": {}, "SUCH": {}, "TELL": {}, "THAN": {}, "THAT": {}, "THEM": {}, "THEN": {},
	"THIS": {}, "TIME": {}, "VERY": {}, "WANT": {}, "WELL": {}, "WHAT": {}, "WHEN": {}, "WILL": {}, "WITH": {}, "WORK": {}, "YEAR": {}, "BEEN": {},
	"COME": {}, "DOES": {}, "DONE": {}, "EACH": {}, "EVEN": {}, "FIND": {}, "GIVE": {}, "GOOD": {}, "HAVE": {}, "HERE": {}, "INTO": {}, "KEEP": {},
	"LAST": {}, "LONG": {}, "TAKE": {}, "THEIR": {}, "THINK": {}, "THOSE": {}, "UNDER": {}, "COULD": {}, "WOULD": {}, "ABOUT": {}, "AFTER": {}, "BEING": {},
	"EVERY": {}, "FIRST": {}, "FOUND": {}, "GREAT": {}, "NEVER": {}, "OTHER": {}, "PLACE": {}, "RIGHT": {}, "STILL": {}, "WHERE": {}, "WHICH": {}, "WHILE": {},
	"WORLD": {}, "THESE": {}, "THING": {}, "THROUGH": {}, "LOL": {}, "LMAO": {}, "LMFAO": {}, "OMG": {}, "WTF": {}, "IMO": {}, "IMHO": {}, "BTW": {},
	"FYI": {}, "TBH": {}, "IDK": {}, "SMH": {}, "NGL": {}, "BRO": {}, "SIS": {}, "FAM": {}, "ASAP": {}, "TBD": {}, "RN": {}, "FR": {},
	"GG": {}, "GL": {}, "HF": {}, "AFK": {}, "BRB": {}, "IRL": {}, "GOAT": {}, "FWIW": {}, "TLDR": {}, "TL": {}, "ATH": {}, "ATL": {},
	"AH": {}, "PM": {}, "IV": {}, "OI": {}, "RSI": {}, "EMA": {}, "SMA": {}, "MACD": {}, "VWAP": {}, "OTM": {}, "ITM": {}, "ATM": {},
	"DTE": {}, "VOL": {}, "AVG": {}, "MAX": {}, "MIN": {}, "BID": {}, "ASK": {}, "HIGH": {}, "OPEN": {}, "YOLO": {}, "FOMO": {}, "HODL": {},
	"MOON": {}, "DIP": {}, "RIP": {}, "CALLS": {}, "PUTS": {}, "CALL": {}, "PUT": {}, "SHORT": {}, "SELL": {}, "HOLD": {}, "USA": {}, "NYC": {},
	"LA": {}, "UK": {}, "EU": {}, "US": {}, "AI": {}, "CFO": {}, "COO": {}, "CTO": {}, "IPO": {}, "SEC": {}, "IRS": {}, "FBI": {},
	"CIA": {}, "LOVE": {}, "LIFE": {}, "CARE": {}, "HELP": {}, "HOME": {}, "HOPE": {}, "KIND": {}, "MIND": {}, "REAL": {}, "TRUE": {}, "BABY": {},
	"BEST": {}, "FAST": {}, "FREE": {}, "FULL": {}, "GLAD": {}, "GOES": {}, "GONE": {}, "HARD": {}, "HUGE": {}, "IDEA": {}, "JOBS": {}, "KIDS": {},
	"LATE": {}, "LESS": {}, "LIVE": {}, "LOST": {}, "LUCK": {}, "MAIN": {}, "NICE": {}, "PAID": {}, "PLAY": {}, "POOR": {}, "RISK": {}, "SAFE": {},
	"SICK": {}, "SURE": {}, "TALK": {}, "WAIT": {}, "WALK": {}, "WILD": {}, "WISE": {}, "GUYS": {}, "NUTS": {}, "KINDA": {}, "ELON": {},
}

// ambiguousTickers are real symbols that are also common words; they need stock context
var ambiguousTickers = wordSet{
	"ALL": {}, "ARE": {}, "BIG": {}, "CAN": {}, "CAR": {}, "DAY": {}, "FUN": {}, "FOR": {}, "GAS": {}, "GOT": {}, "HAS": {}, "HIT": {},
	"HOT": {}, "KEY": {}, "LOW": {}, "MAN": {}, "MEN": {}, "NET": {}, "NOW": {}, "OLD": {}, "ONE": {}, "OUT": {}, "OWN": {}, "PAY": {},
	"RUN": {}, "SEE": {}, "SIX": {}, "TEN": {}, "THE": {}, "TOP": {}, "TRY": {}, "TWO": {}, "WAY": {}, "WIN": {}, "WON": {}, "YOU": {},
	"ALLY": {}, "APPS": {}, "BALL": {}, "BAND": {}, "BILL": {}, "BLUE": {}, "BOOM": {}, "CARS": {}, "CASH": {}, "COST": {}, "DECK": {}, "DISH": {},
	"DOOR": {}, "EDIT": {}, "EYES": {}, "FACT": {}, "FAST": {}, "FIVE": {}, "FLOW": {}, "FOOD": {}, "FORM": {}, "FREE": {}, "FUEL": {}, "FULL": {},
	"FUND": {}, "GAME": {}, "GOOD": {}, "GROW": {}, "HAND": {}, "HEAR": {}, "HELP": {}, "HERE": {}, "HOME": {}, "HOPE": {}, "IDEA": {}, "INFO": {},
	"JOBS": {}, "KIDS": {}, "KIND": {}, "KNOW": {}, "LAND": {}, "LAST": {}, "LAWS": {}, "LEAD": {}, "LIFE": {}, "LINE": {}, "LIVE": {}, "LOOK": {},
	"LOVE": {}, "LUCK": {}, "MAKE": {}, "MATH": {}, "MEAN": {}, "MEET": {}, "MIND": {}, "MOVE": {}, "MUST": {}, "NEAR": {}, "NEED": {}, "NEWS": {},
	"NEXT": {}, "NICE": {}, "OPEN": {}, "PACK": {}, "PAID": {}, "PASS": {}, "PATH": {}, "PEAK": {}, "PLAY": {}, "PLUS": {}, "POST": {}, "PUSH": {},
	"RACE": {}, "RARE": {}, "RATE": {}, "READ": {}, "REAL": {}, "REST": {}, "RIDE": {}, "RING": {}, "RISE": {}, "ROAD": {}, "ROCK": {}, "ROLL": {},
	"ROOF": {}, "ROOM": {}, "SAFE": {}, "SAIL": {}, "SALE": {}, "SAVE": {}, "SEED": {}, "SELF": {}, "SHIP": {}, "SHOP": {}, "SHOW": {}, "SICK": {},
	"SIDE": {}, "SIGN": {}, "SITE": {}, "SIZE": {}, "SNAP": {}, "SOLO": {}, "SONG": {}, "SOON": {}, "SOUL": {}, "SPOT": {}, "STAR": {}, "STAY": {},
	"STEP": {}, "STOP": {}, "TALK": {}, "TALL": {}, "TEAM": {}, "TECH": {}, "TELL": {}, "TEST": {}, "TEXT": {}, "TICK": {}, "TIES": {}, "TIRE": {},
	"TOWN": {}, "TREE": {}, "TRIP": {}, "TRUE": {}, "TURN": {}, "UNIT": {}, "VERY": {}, "VIEW": {}, "VOID": {}, "VOTE": {}, "WAIT": {}, "WALK": {},
	"WALL": {}, "WARM": {}, "WASH": {}, "WAVE": {}, "WAYS": {}, "WEAR": {}, "WEEK": {}, "WELL": {}, "WEST": {}, "WIDE": {}, "WIFE": {}, "WILD": {},
	"WING": {}, "WIRE": {}, "WISE": {}, "WISH": {}, "WOOD": {}, "WORD": {}, "WORK": {}, "WRAP": {}, "YARD": {}, "YEAR": {}, "ZERO": {}, "ZONE": {},
	"BROS": {}, "MARK": {},
}

// dollarOnlyTickers only count when written with a $ prefix
var dollarOnlyTickers = wordSet{
	"DO": {}, "GO": {}, "ON": {}, "SO": {}, "IT": {}, "AT": {}, "BE": {}, "BY": {}, "OR": {}, "AN": {}, "AS": {}, "IF": {},
	"NO": {}, "UP": {}, "WE": {}, "HE": {}, "ME": {}, "TV": {}, "A": {}, "I": {}, "U": {}, "AI": {}, "KO": {}, "CAT": {},
	"DOG": {},
}

var stockContextWords = wordSet{
	"buy": {}, "buying": {}, "bought": {}, "sell": {}, "selling": {}, "sold": {}, "calls": {}, "call": {}, "puts": {}, "put": {},
	"shares": {}, "stock": {}, "stocks": {}, "price": {}, "trading": {}, "trade": {}, "long": {}, "short": {}, "bullish": {}, "bearish": {},
	"options": {}, "option": {}, "squeeze": {}, "moon": {}, "pump": {}, "dump": {}, "dip": {}, "rip": {}, "breakout": {}, "earnings": {},
	"er": {}, "hold": {}, "holding": {}, "position": {}, "entry": {}, "exit": {}, "target": {}, "pt": {}, "strike": {}, "exp": {},
	"expiry": {}, "weekly": {}, "weeklies": {}, "leaps": {}, "spread": {}, "portfolio": {}, "bag": {}, "bags": {}, "bagholder": {}, "avg": {},
	"average": {}, "profit": {}, "loss": {}, "gain": {}, "gains": {}, "tendies": {}, "yolo": {}, "fomo": {}, "chart": {}, "ta": {},
	"support": {}, "resistance": {}, "volume": {}, "float": {}, "si": {}, "iv": {}, "oi": {}, "gamma": {}, "delta": {}, "theta": {},
	"vega": {}, "greeks": {}, "ripping": {}, "drilling": {}, "tanking": {}, "mooning": {}, "printing": {}, "sending": {}, "weak": {}, "strong": {},
	"green": {}, "red": {}, "bounce": {}, "fade": {}, "reversal": {}, "oversold": {}, "overbought": {}, "undervalued": {}, "overvalued": {}, "cheap": {},
	"expensive": {}, "dividend": {}, "div": {}, "yield": {}, "pe": {}, "eps": {}, "revenue": {}, "guidance": {}, "upgrade": {}, "downgrade": {},
	"analyst": {}, "rating": {}, "sector": {}, "etf": {}, "rally": {}, "crash": {}, "correction": {}, "pullback": {}, "consolidation": {}, "channel": {},
	"ticker": {}, "symbol": {}, "stonk": {}, "stonks": {}, "invest": {}, "investing": {}, "investor": {},
}

var bullishWords = wordSet{
	"buy": {}, "buying": {}, "bought": {}, "long": {}, "calls": {}, "call": {}, "bullish": {}, "moon": {}, "rocket": {}, "pump": {},
	"breakout": {}, "rip": {}, "ripping": {}, "squeeze": {}, "green": {}, "up": {}, "higher": {}, "strong": {}, "support": {}, "bounce": {},
	"reversal": {}, "cheap": {}, "dip": {}, "accumulate": {}, "load": {}, "loading": {}, "ath": {}, "highs": {}, "beat": {}, "crush": {},
	"smash": {}, "blast": {}, "fly": {}, "flying": {}, "soar": {}, "send": {}, "print": {}, "tendies": {}, "gains": {}, "lfg": {},
	"letsgoo": {}, "parabolic": {},
}

var bearishWords = wordSet{
	"sell": {}, "selling": {}, "sold": {}, "short": {}, "puts": {}, "put": {}, "bearish": {}, "dump": {}, "dumping": {}, "crash": {},
	"crashing": {}, "tank": {}, "tanking": {}, "drill": {}, "drilling": {}, "red": {}, "down": {}, "lower": {}, "weak": {}, "resistance": {},
	"rejection": {}, "fade": {}, "overvalued": {}, "expensive": {}, "bubble": {}, "top": {}, "topped": {}, "rug": {}, "rugged": {}, "rekt": {},
	"trapped": {}, "baghold": {}, "bagholder": {}, "dead": {}, "cliff": {}, "sink": {},
}
