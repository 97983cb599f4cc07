package sheet

import "fmt"

var monthNames = [12]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// MonthName returns the Russian name of a zero-based month
func MonthName(month int) string {
	if month < 0 || month > 11 {
		return fmt.Sprintf("Месяц %d", month+1)
	}
	return monthNames[month]
}

// PeriodTitle returns the reporting period caption, e.g. "Май 2024"
func PeriodTitle(month, year int) string {
	return fmt.Sprintf("%s %d", MonthName(month), year)
}

// FileName builds the export file name, e.g. Учет_рабочего_времени_Май_2024.xlsx
func FileName(prefix string, month, year int) string {
	return fmt.Sprintf("%s_%s_%d.xlsx", prefix, MonthName(month), year)
}
