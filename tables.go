package twotouch

// entry binds a canonical character to its two-touch code.
type entry struct {
	char rune
	code string
}

type normEntry struct {
	from, to rune
}

type phraseEntry struct {
	phrase string
	codes  []string
}

// Marks are sent as their own code after the base kana.
const (
	voicedMark     = '゛'
	semiVoicedMark = '゜'
)

// baseTable is the 10x10 two-touch grid. The first digit selects the row
// (the key pressed first), the second digit the column.
var baseTable = []entry{
	// kana rows: あ か さ た な は ま や ら わ
	{'あ', "11"}, {'い', "12"}, {'う', "13"}, {'え', "14"}, {'お', "15"},
	{'か', "21"}, {'き', "22"}, {'く', "23"}, {'け', "24"}, {'こ', "25"},
	{'さ', "31"}, {'し', "32"}, {'す', "33"}, {'せ', "34"}, {'そ', "35"},
	{'た', "41"}, {'ち', "42"}, {'つ', "43"}, {'て', "44"}, {'と', "45"},
	{'な', "51"}, {'に', "52"}, {'ぬ', "53"}, {'ね', "54"}, {'の', "55"},
	{'は', "61"}, {'ひ', "62"}, {'ふ', "63"}, {'へ', "64"}, {'ほ', "65"},
	{'ま', "71"}, {'み', "72"}, {'む', "73"}, {'め', "74"}, {'も', "75"},
	{'や', "81"}, {'(', "82"}, {'ゆ', "83"}, {')', "84"}, {'よ', "85"},
	{'ら', "91"}, {'り', "92"}, {'る', "93"}, {'れ', "94"}, {'ろ', "95"},
	{'わ', "01"}, {'を', "02"}, {'ん', "03"}, {voicedMark, "04"}, {semiVoicedMark, "05"},

	// latin, columns 6 to 0
	{'A', "16"}, {'B', "17"}, {'C', "18"}, {'D', "19"}, {'E', "10"},
	{'F', "26"}, {'G', "27"}, {'H', "28"}, {'I', "29"}, {'J', "20"},
	{'K', "36"}, {'L', "37"}, {'M', "38"}, {'N', "39"}, {'O', "30"},
	{'P', "46"}, {'Q', "47"}, {'R', "48"}, {'S', "49"}, {'T', "40"},
	{'U', "56"}, {'V', "57"}, {'W', "58"}, {'X', "59"}, {'Y', "50"},
	{'Z', "66"}, {'?', "67"}, {'!', "68"}, {'-', "69"}, {'/', "60"},
	{'\\', "76"}, {'&', "77"},
	{'*', "86"}, {'#', "87"}, {' ', "88"},
	{'1', "96"}, {'2', "97"}, {'3', "98"}, {'4', "99"}, {'5', "90"},
	{'6', "06"}, {'7', "07"}, {'8', "08"}, {'9', "09"}, {'0', "00"},
}

// compositeTable holds kana typed as base code + mark code.
var compositeTable = []entry{
	{'が', "2104"}, {'ぎ', "2204"}, {'ぐ', "2304"}, {'げ', "2404"}, {'ご', "2504"},
	{'ざ', "3104"}, {'じ', "3204"}, {'ず', "3304"}, {'ぜ', "3404"}, {'ぞ', "3504"},
	{'だ', "4104"}, {'ぢ', "4204"}, {'づ', "4304"}, {'で', "4404"}, {'ど', "4504"},
	{'ば', "6104"}, {'び', "6204"}, {'ぶ', "6304"}, {'べ', "6404"}, {'ぼ', "6504"},

	{'ぱ', "6105"}, {'ぴ', "6205"}, {'ぷ', "6305"}, {'ぺ', "6405"}, {'ぽ', "6505"},
}

// normalizationTable lists variants that x/text/width cannot derive.
// Full-width ASCII (U+FF01..U+FF5E) is generated at build time.
var normalizationTable = []normEntry{
	{'ぁ', 'あ'}, {'ぃ', 'い'}, {'ぅ', 'う'}, {'ぇ', 'え'}, {'ぉ', 'お'},
	{'っ', 'つ'}, {'ゃ', 'や'}, {'ゅ', 'ゆ'}, {'ょ', 'よ'},
	{'￥', '\\'},
	{'　', ' '},
	{'ー', '-'},
}

// phraseTable is the pager slang dictionary. Order of codes is the
// preferred order of candidates.
var phraseTable = []phraseEntry{
	{"今", []string{"10"}},
	{"いま", []string{"10"}},
	{"海", []string{"41"}},
	{"うみ", []string{"41"}},
	{"シー", []string{"41"}},
	{"しー", []string{"41"}},
	{"至急", []string{"49"}},
	{"しきゅう", []string{"49"}},
	{"待ってる", []string{"106"}},
	{"まってる", []string{"106"}},
	{"TEL", []string{"106"}},
	{"ＴＥＬ", []string{"106"}},
	{"テル", []string{"106"}},
	{"遅れてる", []string{"9106"}},
	{"おくれてる", []string{"9106"}},
	{"愛してる", []string{"14106", "114106", "1410"}},
	{"あいしてる", []string{"14106", "114106", "1410"}},
	{"何してる", []string{"724106"}},
	{"なにしてる", []string{"724106"}},
	{"起きてる", []string{"09106", "9106"}},
	{"おきてる", []string{"09106", "9106"}},
	{"行くよ", []string{"194"}},
	{"いくよ", []string{"194"}},
	{"池袋", []string{"269"}},
	{"いけぶくろ", []string{"269"}},
	{"渋谷", []string{"428"}},
	{"しぶや", []string{"428"}},
	{"おやすみ", []string{"833"}},
	{"おはよう", []string{"840", "0840"}},
	{"ハロー", []string{"860"}},
	{"はやく", []string{"889"}},
	{"早く", []string{"889"}},
	{"サンキュー", []string{"39", "999"}},
	{"Thank you", []string{"39", "999"}},
	{"thank you", []string{"39", "999"}},
	{"会えない", []string{"1871"}},
	{"あえない", []string{"1871"}},
	{"さよなら", []string{"3470"}},
	{"寒いよ", []string{"3614"}},
	{"さむいよ", []string{"3614"}},
	{"仕事", []string{"4510"}},
	{"しごと", []string{"4510"}},
	{"横浜", []string{"4580"}},
	{"よこはま", []string{"4580"}},
	{"よろしく", []string{"4649"}},
	{"ファイト", []string{"5110"}},
	{"ふぁいと", []string{"5110"}},
	{"お仕事ファイト", []string{"045105110"}},
	{"おしごとふぁいと", []string{"045105110"}},
	{"ご苦労さん", []string{"5963"}},
	{"ごくろうさん", []string{"5963"}},
	{"バイト", []string{"8110"}},
	{"ばいと", []string{"8110"}},
	{"バイバイ", []string{"8181"}},
	{"ばいばい", []string{"8181"}},
	{"今どこ", []string{"10105"}},
	{"いまどこ", []string{"10105"}},
	{"会いたいよ", []string{"110149"}},
	{"あいたいよ", []string{"11014"}},
	{"着いたよ", []string{"21104"}},
	{"ついたよ", []string{"21104"}},
	{"寂しいよ", []string{"33414"}},
	{"さびしいよ", []string{"33414"}},
	{"デートしよ", []string{"101044"}},
	{"でーとしよ", []string{"101044"}},
	{"TEL欲しい", []string{"106841"}},
	{"TELほしい", []string{"106841"}},
	{"ごめんなさい", []string{"500731"}},
	{"早くして", []string{"889410"}},
	{"はやくして", []string{"889410"}},
	{"どこにいるの", []string{"1052167"}},
	{"今から行くよ", []string{"1056194"}},
	{"いまからいくよ", []string{"1056194"}},
	{"ボウリング行こ", []string{"015"}},
	{"ボウリングいこ", []string{"015"}},
	{"遅れる", []string{"090"}},
	{"おくれる", []string{"090"}},
	{"ずっと一緒にいようね", []string{"2101442147"}},
	{"ずっと一緒にいよーね", []string{"21014421479"}},
	{"ずっといっしょにいようね", []string{"2101442147"}},
	{"ずっといっしょにいよーね", []string{"21014421479"}},
}
