package schedule

const minutesPerDay = 24 * 60

func isValidRangeBounds(startMinute, endMinute int) bool {
	if startMinute < 0 || endMinute > minutesPerDay {
		return false
	}
	return endMinute > startMinute
}

func isValidCapacity(capacity int64) bool {
	return capacity > 0
}
