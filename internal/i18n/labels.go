package i18n

// Built-in label sets. KO is complete and serves as the base language.

const (
	KO Lang = "KO"
	EN Lang = "EN"
)

// ReportColumns is the column order of the list view and the CSV export.
var ReportColumns = []string{"Date", "Name", "Account", "Tier", "ER", "Products", "Post_Date", "Comment"}

var builtinLabels = map[Lang]map[Key]string{
	KO: {
		KeyTitle:               "IRM 관리 시스템",
		KeyTabForm:             "인플루언서 등록 및 분석",
		KeyTabList:             "데이터베이스/리스트",
		KeyName:                "이름",
		KeyAccount:             "SNS 계정",
		KeyShipDate:            "제품 발송일",
		KeyGuideDate:           "가이드 전달일",
		KeyProductInfo:         "발송 제품 및 수량",
		KeyPostDate:            "포스팅 날짜",
		KeyNarrative:           "브랜드 서사 적합도",
		KeyProfessionalism:     "협업 전문성",
		KeyQuantitative:        "정량 데이터",
		KeyContext:             "콘텐츠 원문 및 댓글",
		KeyNote:                "코멘트 (특이점)",
		KeySave:                "분석 결과 저장",
		KeyDownload:            "데이터 다운로드 (엑셀 호환 CSV)",
		KeyDownloadFull:        "전체 항목 다운로드 (CSV)",
		KeyNeedResolution:      "결핍 해결력",
		KeySloganFit:           "슬로건 반영",
		KeyLifestyleFusion:     "라이프스타일 융합",
		KeyDeadline:            "마감 준수",
		KeyGuideCompliance:     "가이드 이행",
		KeyCommunication:       "소통 매너",
		KeyReach:               "Reach (조회수)",
		KeyLikes:               "Likes",
		KeyComments:            "Comments",
		KeyShares:              "Shares",
		KeyEngagementRate:      "Engagement Rate (ER)",
		KeyCaption:             "캡션 원문",
		KeyReplies:             "댓글 반응",
		KeyNotePlaceholder:     "특이사항 입력",
		KeyNamePlaceholder:     "성함/닉네임",
		KeyAccountPlaceholder:  "@아이디",
		KeyProductPlaceholder:  "발송 제품명",
		KeyShipDatePlaceholder: "2024-01-01",
		KeyGuidePlaceholder:    "2024-01-02",
		KeyPostDatePlaceholder: "2024-01-10 예정",
		KeySaved:               "데이터베이스에 저장되었습니다!",
		KeyEmpty:               "저장된 데이터가 없습니다.",
		KeyLanguage:            "🌐 Language",

		MessageKey("VAL001"):  "조회수(Reach)는 1 이상이어야 합니다",
		ActionKey("VAL001"):   "조회수를 1 이상으로 입력하세요",
		MessageKey("VAL002"):  "평가 점수는 1점에서 5점 사이여야 합니다",
		ActionKey("VAL002"):   "모든 항목을 1~5점 중에서 선택하세요",
		MessageKey("VAL003"):  "숫자 항목을 읽을 수 없습니다",
		ActionKey("VAL003"):   "단위나 구분 기호 없이 정수로 입력하세요",
		MessageKey("EXP001"):  "저장된 데이터가 없습니다",
		ActionKey("EXP001"):   "먼저 분석 결과를 하나 이상 저장하세요",
		MessageKey("EXP002"):  "올바른 리포트 파일이 아닙니다",
		ActionKey("EXP002"):   "이 시스템에서 내보낸 파일을 사용하세요",
		MessageKey("SES001"):  "세션을 찾을 수 없습니다",
		ActionKey("SES001"):   "페이지를 새로 고쳐 새 세션을 시작하세요",
		MessageKey("SES002"):  "입력 양식이 만료되었습니다",
		ActionKey("SES002"):   "페이지를 새로 고친 뒤 다시 제출하세요",
		MessageKey("REQ001"):  "요청이 취소되었습니다",
		ActionKey("REQ001"):   "다시 시도해 주세요",
		MessageKey("REQ002"):  "요청 시간이 초과되었습니다",
		ActionKey("REQ002"):   "다시 시도해 주세요",
		MessageKey("RATE001"): "요청이 너무 많습니다",
		ActionKey("RATE001"):  "잠시 후 다시 시도해 주세요",
		MessageKey("ERR000"):  "예기치 않은 오류가 발생했습니다",
		ActionKey("ERR000"):   "다시 시도해 주세요",
	},
	EN: {
		KeyTitle:               "IRM Management System",
		KeyTabForm:             "Add & Analyze",
		KeyTabList:             "Database / List",
		KeyName:                "Name",
		KeyAccount:             "Account",
		KeyShipDate:            "Shipping Date",
		KeyGuideDate:           "Guide Sent Date",
		KeyProductInfo:         "Products & Qty",
		KeyPostDate:            "Posting Date",
		KeyNarrative:           "Narrative Fit",
		KeyProfessionalism:     "Professionalism",
		KeyQuantitative:        "Quantitative Data",
		KeyContext:             "Content & Comments",
		KeyNote:                "Comment (Notes)",
		KeySave:                "Save Analysis",
		KeyDownload:            "Download Data (CSV)",
		KeyDownloadFull:        "Download All Fields (CSV)",
		KeyNeedResolution:      "Need Resolution",
		KeySloganFit:           "Slogan Fit",
		KeyLifestyleFusion:     "Lifestyle Fusion",
		KeyDeadline:            "Deadline Adherence",
		KeyGuideCompliance:     "Guide Compliance",
		KeyCommunication:       "Communication Manners",
		KeyReach:               "Reach (Views)",
		KeyLikes:               "Likes",
		KeyComments:            "Comments",
		KeyShares:              "Shares",
		KeyEngagementRate:      "Engagement Rate (ER)",
		KeyCaption:             "Caption",
		KeyReplies:             "Comment Reactions",
		KeyNotePlaceholder:     "Enter notes",
		KeyNamePlaceholder:     "Name / Nickname",
		KeyAccountPlaceholder:  "@handle",
		KeyProductPlaceholder:  "Product name",
		KeyShipDatePlaceholder: "2024-01-01",
		KeyGuidePlaceholder:    "2024-01-02",
		KeyPostDatePlaceholder: "2024-01-10 (planned)",
		KeySaved:               "Saved to the database!",
		KeyEmpty:               "No saved data.",
		KeyLanguage:            "🌐 Language",

		MessageKey("VAL001"):  "Reach must be at least 1",
		ActionKey("VAL001"):   "Enter the number of views (1 or more)",
		MessageKey("VAL002"):  "Ratings must be between 1 and 5",
		ActionKey("VAL002"):   "Choose a value from 1 to 5 for every rating",
		MessageKey("VAL003"):  "A numeric field could not be read",
		ActionKey("VAL003"):   "Enter whole numbers without separators or units",
		MessageKey("EXP001"):  "No saved data",
		ActionKey("EXP001"):   "Save at least one analysis first",
		MessageKey("EXP002"):  "File is not a valid report",
		ActionKey("EXP002"):   "Use a file exported by this system",
		MessageKey("SES001"):  "Session not found",
		ActionKey("SES001"):   "Reload the page to start a new session",
		MessageKey("SES002"):  "The form has expired",
		ActionKey("SES002"):   "Reload the page and submit again",
		MessageKey("REQ001"):  "Request was cancelled",
		ActionKey("REQ001"):   "Please try again",
		MessageKey("REQ002"):  "Request timed out",
		ActionKey("REQ002"):   "Please try again",
		MessageKey("RATE001"): "Too many requests",
		ActionKey("RATE001"):  "Please wait a moment before trying again",
		MessageKey("ERR000"):  "An unexpected error occurred",
		ActionKey("ERR000"):   "Please try again",
	},
}
