package enums

// Format is the container/video format of a release.
type Format int

const (
	FormatAVI    Format = 10
	FormatHD     Format = 20
	FormatHD1080 Format = 30
)

var formatTable = newTable[Format](30900,
	variant{id: int(FormatAVI), name: "AVI", token: "AVI", label: "AVI"},
	variant{id: int(FormatHD), name: "HD", token: "HD-rip", label: "HD-rip"},
	variant{id: int(FormatHD1080), name: "HD1080", token: "HD-rip 1080", label: "HD-rip 1080"},
)

func (f Format) ID() int        { return int(f) }
func (f Format) Token() string  { return formatTable.token(f) }
func (f Format) LangID() int    { return formatTable.langID(f) }
func (f Format) String() string { return formatTable.label(f) }

// FindFormat resolves an id, site token or label.
func FindFormat(what string) (Format, bool) { return formatTable.find(what) }

func AllFormats() []Format { return formatTable.all() }

// VideoQuality is the video source tier shown by the site.
type VideoQuality int

const (
	VideoQualityBadCamRip VideoQuality = 10
	VideoQualityCamRip    VideoQuality = 20
	VideoQualityVHSRip    VideoQuality = 21
	VideoQualityTVRip     VideoQuality = 30
	VideoQualityDVDSCR    VideoQuality = 31
	VideoQualityHDTV      VideoQuality = 32
	VideoQualityHDTVHD    VideoQuality = 33
	VideoQualityDVDRip    VideoQuality = 40
	VideoQualityWEBDL     VideoQuality = 41
	VideoQualityHDRip     VideoQuality = 50
	VideoQualityWEBDLHD   VideoQuality = 51
)

var videoQualityTable = newTable[VideoQuality](30100,
	variant{id: int(VideoQualityBadCamRip), name: "BAD_CAM_RIP", token: "(1) плохая экранка", label: "Bad cam rip"},
	variant{id: int(VideoQualityCamRip), name: "CAM_RIP", token: "(2) экранка", label: "Cam rip"},
	variant{id: int(VideoQualityVHSRip), name: "VHS_RIP", token: "(2) VHS-рип", label: "VHS rip"},
	variant{id: int(VideoQualityTVRip), name: "TV_RIP", token: "(3) TV-рип", label: "TV rip"},
	variant{id: int(VideoQualityDVDSCR), name: "DVD_SCR", token: "(3) DVDscr", label: "DVD SCR"},
	variant{id: int(VideoQualityHDTV), name: "HDTV", token: "(3) HDTV", label: "HDTV"},
	variant{id: int(VideoQualityHDTVHD), name: "HDTV_HD", token: "(3) HDTV HD", label: "HDTV HD"},
	variant{id: int(VideoQualityDVDRip), name: "DVD_RIP", token: "(4) DVD-рип", label: "DVD rip"},
	variant{id: int(VideoQualityWEBDL), name: "WEB_DL", token: "(4) Web-DL", label: "WEB DL"},
	variant{id: int(VideoQualityHDRip), name: "HD_RIP", token: "(5) HD-рип", label: "HD rip"},
	variant{id: int(VideoQualityWEBDLHD), name: "WEB_DL_HD", token: "(5) Web-DL HD", label: "WEB DL HD"},
)

func (v VideoQuality) ID() int        { return int(v) }
func (v VideoQuality) Token() string  { return videoQualityTable.token(v) }
func (v VideoQuality) LangID() int    { return videoQualityTable.langID(v) }
func (v VideoQuality) String() string { return videoQualityTable.label(v) }

func FindVideoQuality(what string) (VideoQuality, bool) { return videoQualityTable.find(what) }

func AllVideoQualities() []VideoQuality { return videoQualityTable.all() }

// AudioQuality is the translation/audio tier shown by the site.
type AudioQuality int

const (
	AudioQualityWithoutTranslation AudioQuality = 12
	AudioQualityCamRip             AudioQuality = 11
	AudioQualityVolodarsky         AudioQuality = 10
	AudioQualityOneVoice           AudioQuality = 20
	AudioQualityManyVoices         AudioQuality = 30
	AudioQualityLine               AudioQuality = 31
	AudioQualityProfessional       AudioQuality = 40
	AudioQualityOriginal           AudioQuality = 50
)

var audioQualityTable = newTable[AudioQuality](30300,
	variant{id: int(AudioQualityWithoutTranslation), name: "WITHOUT_TRANSLATION", token: "нет перевода", label: "Without translation"},
	variant{id: int(AudioQualityCamRip), name: "CAM_RIP", token: "(1) дубляж с экранки", label: "Cam rip"},
	variant{id: int(AudioQualityVolodarsky), name: "VOLODARSKY", token: "(1) озвучка секты им. Л.В. Володарского", label: "Volodarsky"},
	variant{id: int(AudioQualityOneVoice), name: "ONE_VOICE", token: "(2) любительский одноголосый перевод", label: "One voice"},
	variant{id: int(AudioQualityManyVoices), name: "MANY_VOICES", token: "(3) любительский многоголосый перевод", label: "Many voices"},
	variant{id: int(AudioQualityLine), name: "LINE", token: "(3) звук line", label: "Line"},
	variant{id: int(AudioQualityProfessional), name: "PROFESSIONAL", token: "(4) профессиональный перевод", label: "Professional"},
	variant{id: int(AudioQualityOriginal), name: "ORIGINAL", token: "(5) оригинальная дорожка/полный дубляж", label: "Original"},
)

func (a AudioQuality) ID() int        { return int(a) }
func (a AudioQuality) Token() string  { return audioQualityTable.token(a) }
func (a AudioQuality) LangID() int    { return audioQualityTable.langID(a) }
func (a AudioQuality) String() string { return audioQualityTable.label(a) }

func FindAudioQuality(what string) (AudioQuality, bool) { return audioQualityTable.find(what) }

func AllAudioQualities() []AudioQuality { return audioQualityTable.all() }

// Flag is a badge attached to search rows, folders and files.
type Flag int

const (
	FlagQualityUpdated Flag = 1
	FlagRecentlyAdded  Flag = 2
	FlagNewSeries      Flag = 3
)

var flagTable = newTable[Flag](30200,
	variant{id: int(FlagQualityUpdated), name: "QUALITY_UPDATED", token: "новое качество", label: "Quality updated"},
	variant{id: int(FlagRecentlyAdded), name: "RECENTLY_ADDED", token: "новинка", label: "Recently added"},
	variant{id: int(FlagNewSeries), name: "NEW_SERIES", token: "новые серии", label: "New series"},
)

func (f Flag) ID() int        { return int(f) }
func (f Flag) Token() string  { return flagTable.token(f) }
func (f Flag) LangID() int    { return flagTable.langID(f) }
func (f Flag) String() string { return flagTable.label(f) }

func FindFlag(what string) (Flag, bool) { return flagTable.find(what) }

func AllFlags() []Flag { return flagTable.all() }
