package main

import (
	"fmt"
	"log"
	"time"

	"github.com/christianjgreen/bno055"
)

func main() {
	sensor, err := bno055.New()
	if err != nil {
		log.Fatal(err)
	}
	defer sensor.Close()

	rev, err := sensor.Revision()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("BNO055 detected, sw rev.%#04x bootloader rev.%d\n", rev.Software, rev.Bootloader)

	t := time.NewTicker(100 * time.Millisecond)

	for {
		e, err := sensor.Euler()
		if err != nil {
			log.Fatal(err)
		}
		cal, err := sensor.Calibration()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\rheading = %6.1f° roll = %6.1f° pitch = %6.1f° cal = %d%d%d%d ",
			e.Heading, e.Roll, e.Pitch,
			cal.System, cal.Gyroscope, cal.Accelerometer, cal.Magnetometer)
		<-t.C
	}
}
