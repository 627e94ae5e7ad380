package convctx

type districtAlias struct {
	alias      string
	province   string
	district   string
	confidence float64
}

// districts is checked in order and the first alias found wins, so a more
// specific alias must precede any shorter alias it contains: "대전 중구"
// has to be tried before Seoul's "중구". Bare 남구, 서구 and 동구 are
// omitted because several cities share them.
var districts = []districtAlias{
	{"대전 유성구", "대전광역시", "유성구", 0.99},
	{"대전 서구", "대전광역시", "서구", 0.99},
	{"대전 동구", "대전광역시", "동구", 0.99},
	{"대전 중구", "대전광역시", "중구", 0.99},
	{"대전 대덕구", "대전광역시", "대덕구", 0.99},
	{"광주 동구", "광주광역시", "동구", 0.99},
	{"광주 서구", "광주광역시", "서구", 0.99},
	{"광주 남구", "광주광역시", "남구", 0.99},
	{"광주 북구", "광주광역시", "북구", 0.99},
	{"광주 광산구", "광주광역시", "광산구", 0.99},
	{"울산 중구", "울산광역시", "중구", 0.99},
	{"울산 남구", "울산광역시", "남구", 0.99},
	{"울산 동구", "울산광역시", "동구", 0.99},
	{"울산 북구", "울산광역시", "북구", 0.99},
	{"울산 울주군", "울산광역시", "울주군", 0.99},
	{"부산 중구", "부산광역시", "중구", 0.99},
	{"부산 동구", "부산광역시", "동구", 0.99},
	{"부산 서구", "부산광역시", "서구", 0.99},
	{"부산 남구", "부산광역시", "남구", 0.99},
	{"부산 북구", "부산광역시", "북구", 0.99},
	{"부산 강서", "부산광역시", "강서구", 0.99},
	{"대구 중구", "대구광역시", "중구", 0.99},
	{"대구 동구", "대구광역시", "동구", 0.99},
	{"대구 서구", "대구광역시", "서구", 0.99},
	{"대구 남구", "대구광역시", "남구", 0.99},
	{"대구 북구", "대구광역시", "북구", 0.99},
	{"인천 중구", "인천광역시", "중구", 0.99},
	{"인천 동구", "인천광역시", "동구", 0.99},
	{"인천 서구", "인천광역시", "서구", 0.99},

	{"강남", "서울특별시", "강남구", 0.99},
	{"서초", "서울특별시", "서초구", 0.99},
	{"송파", "서울특별시", "송파구", 0.99},
	{"강동", "서울특별시", "강동구", 0.99},
	{"마포", "서울특별시", "마포구", 0.99},
	{"용산", "서울특별시", "용산구", 0.99},
	{"성동", "서울특별시", "성동구", 0.99},
	{"광진", "서울특별시", "광진구", 0.99},
	{"동대문", "서울특별시", "동대문구", 0.99},
	{"중랑", "서울특별시", "중랑구", 0.99},
	{"영등포", "서울특별시", "영등포구", 0.99},
	{"관악", "서울특별시", "관악구", 0.99},
	{"동작", "서울특별시", "동작구", 0.99},
	{"강서", "서울특별시", "강서구", 0.99},
	{"양천", "서울특별시", "양천구", 0.99},
	{"구로", "서울특별시", "구로구", 0.99},
	{"금천", "서울특별시", "금천구", 0.99},
	{"종로", "서울특별시", "종로구", 0.99},
	{"성북", "서울특별시", "성북구", 0.99},
	{"강북", "서울특별시", "강북구", 0.99},
	{"도봉", "서울특별시", "도봉구", 0.99},
	{"노원", "서울특별시", "노원구", 0.99},
	{"은평", "서울특별시", "은평구", 0.99},
	{"서대문", "서울특별시", "서대문구", 0.99},
	{"중구", "서울특별시", "중구", 0.99},

	{"분당구", "경기도", "성남시 분당구", 0.98},
	{"일산동", "경기도", "일산동구", 0.98},
	{"일산서", "경기도", "일산서구", 0.98},
	{"분당", "경기도", "성남시 분당구", 0.95},
	{"일산", "경기도", "고양시 일산동구", 0.9},
	{"판교", "경기도", "성남시", 0.9},
	{"성남", "경기도", "성남시", 0.9},
	{"수원", "경기도", "수원시", 0.9},
	{"용인", "경기도", "용인시", 0.9},
	{"고양", "경기도", "고양시", 0.9},
	{"화성", "경기도", "화성시", 0.9},
	{"부천", "경기도", "부천시", 0.9},
	{"안산", "경기도", "안산시", 0.9},
	{"안양", "경기도", "안양시", 0.9},
	{"남양주", "경기도", "남양주시", 0.9},
	{"의정부", "경기도", "의정부시", 0.9},
	{"시흥", "경기도", "시흥시", 0.9},
	{"파주", "경기도", "파주시", 0.9},
	{"김포", "경기도", "김포시", 0.9},
	{"광명", "경기도", "광명시", 0.9},
	{"하남", "경기도", "하남시", 0.9},
	{"군포", "경기도", "군포시", 0.9},
	{"오산", "경기도", "오산시", 0.9},
	{"이천", "경기도", "이천시", 0.9},
	{"평택", "경기도", "평택시", 0.9},
	{"광주시", "경기도", "광주시", 0.9},
	{"동탄", "경기도", "화성시", 0.9},
	{"포천", "경기도", "포천시", 0.9},
	{"양주", "경기도", "양주시", 0.9},
	{"구리", "경기도", "구리시", 0.9},
	{"의왕", "경기도", "의왕시", 0.9},
	{"과천", "경기도", "과천시", 0.9},
	{"연천", "경기도", "연천군", 0.9},
	{"가평", "경기도", "가평군", 0.9},
	{"양평", "경기도", "양평군", 0.9},
	{"여주", "경기도", "여주시", 0.9},
	{"안성", "경기도", "안성시", 0.9},

	{"해운대", "부산광역시", "해운대구", 0.95},
	{"수영", "부산광역시", "수영구", 0.95},
	{"연제", "부산광역시", "연제구", 0.95},
	{"부산진", "부산광역시", "부산진구", 0.95},
	{"사하", "부산광역시", "사하구", 0.95},
	{"금정", "부산광역시", "금정구", 0.95},

	{"수성", "대구광역시", "수성구", 0.95},
	{"달서", "대구광역시", "달서구", 0.95},

	{"미추홀", "인천광역시", "미추홀구", 0.95},
	{"연수", "인천광역시", "연수구", 0.95},
	{"부평", "인천광역시", "부평구", 0.95},
	{"남동", "인천광역시", "남동구", 0.95},
	{"송도", "인천광역시", "연수구", 0.9},
	{"청라", "인천광역시", "서구", 0.9},

	{"유성구", "대전광역시", "유성구", 0.9},
	{"유성", "대전광역시", "유성구", 0.9},

	{"광산", "광주광역시", "광산구", 0.9},

	{"춘천", "강원특별자치도", "춘천시", 0.9},
	{"원주", "강원특별자치도", "원주시", 0.9},
	{"강릉", "강원특별자치도", "강릉시", 0.9},
	{"동해", "강원특별자치도", "동해시", 0.9},
	{"속초", "강원특별자치도", "속초시", 0.9},
	{"태백", "강원특별자치도", "태백시", 0.9},
	{"삼척", "강원특별자치도", "삼척시", 0.9},
	{"평창", "강원특별자치도", "평창군", 0.9},

	{"청주", "충청북도", "청주시", 0.9},
	{"충주", "충청북도", "충주시", 0.9},
	{"제천", "충청북도", "제천시", 0.9},
	{"음성", "충청북도", "음성군", 0.9},

	{"천안", "충청남도", "천안시", 0.9},
	{"아산", "충청남도", "아산시", 0.9},
	{"당진", "충청남도", "당진시", 0.9},
	{"서산", "충청남도", "서산시", 0.9},
	{"논산", "충청남도", "논산시", 0.9},
	{"공주", "충청남도", "공주시", 0.9},
	{"보령", "충청남도", "보령시", 0.9},
	{"홍성", "충청남도", "홍성군", 0.9},
	{"예산", "충청남도", "예산군", 0.9},

	{"전주", "전북특별자치도", "전주시", 0.9},
	{"군산", "전북특별자치도", "군산시", 0.9},
	{"익산", "전북특별자치도", "익산시", 0.9},
	{"정읍", "전북특별자치도", "정읍시", 0.9},
	{"남원", "전북특별자치도", "남원시", 0.9},
	{"김제", "전북특별자치도", "김제시", 0.9},

	{"목포", "전라남도", "목포시", 0.9},
	{"여수", "전라남도", "여수시", 0.9},
	{"순천", "전라남도", "순천시", 0.9},
	{"광양", "전라남도", "광양시", 0.9},
	{"나주", "전라남도", "나주시", 0.9},
	{"무안", "전라남도", "무안군", 0.9},
	{"해남", "전라남도", "해남군", 0.9},
	{"화순", "전라남도", "화순군", 0.9},

	{"포항", "경상북도", "포항시", 0.9},
	{"경주", "경상북도", "경주시", 0.9},
	{"구미", "경상북도", "구미시", 0.9},
	{"안동", "경상북도", "안동시", 0.9},
	{"영주", "경상북도", "영주시", 0.9},
	{"영천", "경상북도", "영천시", 0.9},
	{"상주", "경상북도", "상주시", 0.9},

	{"창원", "경상남도", "창원시", 0.9},
	{"김해", "경상남도", "김해시", 0.9},
	{"진주", "경상남도", "진주시", 0.9},
	{"양산", "경상남도", "양산시", 0.9},
	{"통영", "경상남도", "통영시", 0.9},
	{"사천", "경상남도", "사천시", 0.9},
	{"거제", "경상남도", "거제시", 0.9},

	{"제주시", "제주특별자치도", "제주시", 0.95},
	{"서귀포", "제주특별자치도", "서귀포시", 0.95},

	{"세종", "세종특별자치시", "", 0.98},
}

type provinceAlias struct {
	alias    string
	province string
}

var provinces = []provinceAlias{
	{"서울", "서울특별시"},
	{"부산", "부산광역시"},
	{"대구", "대구광역시"},
	{"인천", "인천광역시"},
	{"광주", "광주광역시"},
	{"대전", "대전광역시"},
	{"울산", "울산광역시"},
	{"세종", "세종특별자치시"},
	{"세종시", "세종특별자치시"},
	{"경기", "경기도"},
	{"강원", "강원특별자치도"},
	{"강원도", "강원특별자치도"},
	{"충북", "충청북도"},
	{"충청북도", "충청북도"},
	{"충남", "충청남도"},
	{"충청남도", "충청남도"},
	{"전북", "전북특별자치도"},
	{"전북특별자치도", "전북특별자치도"},
	{"전남", "전라남도"},
	{"전라남도", "전라남도"},
	{"경북", "경상북도"},
	{"경상북도", "경상북도"},
	{"경남", "경상남도"},
	{"경상남도", "경상남도"},
	{"제주", "제주특별자치도"},
	{"제주도", "제주특별자치도"},
}
