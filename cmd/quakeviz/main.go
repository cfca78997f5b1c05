package main

import (
	_ "time/tzdata" // charts.location must resolve on hosts without zoneinfo
)

func main() {
	execute()
}
