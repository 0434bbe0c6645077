package calendar

import (
	"time"

	lunar "github.com/6tail/lunar-go/calendar"
)

type monthDay struct {
	month int
	day   int
}

// solarFestivals are fixed Gregorian holidays. They win over lunar labels.
var solarFestivals = map[monthDay]string{
	{1, 1}:   "元旦",
	{3, 8}:   "妇女节",
	{5, 1}:   "劳动节",
	{6, 1}:   "儿童节",
	{10, 1}:  "国庆",
	{12, 25}: "圣诞",
}

// lunarFestivals are keyed by lunar month and day. 除夕 is handled
// separately since the twelfth month has 29 or 30 days.
var lunarFestivals = map[monthDay]string{
	{1, 1}:   "春节",
	{1, 15}:  "元宵",
	{5, 5}:   "端午",
	{7, 7}:   "七夕",
	{8, 15}:  "中秋",
	{9, 9}:   "重阳",
	{12, 8}:  "腊八",
	{12, 23}: "小年",
}

var lunarMonthNames = [...]string{"", "正月", "二月", "三月", "四月", "五月", "六月",
	"七月", "八月", "九月", "十月", "冬月", "腊月"}

var lunarDayNames = [...]string{"",
	"初一", "初二", "初三", "初四", "初五", "初六", "初七", "初八", "初九", "初十",
	"十一", "十二", "十三", "十四", "十五", "十六", "十七", "十八", "十九", "二十",
	"廿一", "廿二", "廿三", "廿四", "廿五", "廿六", "廿七", "廿八", "廿九", "三十"}

// Festival returns the label shown under a day number and whether it names
// a festival. Ordinary days get their lunar day, or the lunar month name on
// the first day of a lunar month.
func Festival(date time.Time) (string, bool) {
	if name, ok := solarFestivals[monthDay{int(date.Month()), date.Day()}]; ok {
		return name, true
	}

	l := lunarDate(date)
	month, day := l.GetMonth(), l.GetDay()
	leap := month < 0

	if !leap {
		if name, ok := lunarFestivals[monthDay{month, day}]; ok {
			return name, true
		}
		if month == 12 {
			next := lunarDate(date.AddDate(0, 0, 1))
			if next.GetMonth() == 1 && next.GetDay() == 1 {
				return "除夕", true
			}
		}
	}

	if day == 1 {
		if leap {
			return "闰" + lunarMonthNames[-month], false
		}
		return lunarMonthNames[month], false
	}
	if day > 0 && day < len(lunarDayNames) {
		return lunarDayNames[day], false
	}
	return "", false
}

func lunarDate(date time.Time) *lunar.Lunar {
	return lunar.NewSolarFromYmd(date.Year(), int(date.Month()), date.Day()).GetLunar()
}
