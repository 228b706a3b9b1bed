package service

import "github.com/sirupsen/logrus"

// logIssues пишет в лог восстановленные дефекты записи. Битая запись не
// роняет выборку, но и молча терять ее дефекты нельзя.
func logIssues(log *logrus.Entry, kind, id string, issues error) {
	if issues == nil {
		return
	}
	log.WithError(issues).WithFields(logrus.Fields{
		"kind": kind,
		"id":   id,
	}).Warn("record normalized with issues")
}
